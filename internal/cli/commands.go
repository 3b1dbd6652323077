package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/worklog/report-dashboard/internal/app"
	"github.com/worklog/report-dashboard/internal/core/catalog"
	"github.com/worklog/report-dashboard/internal/core/domain"
	"github.com/worklog/report-dashboard/internal/core/ports"
	"github.com/worklog/report-dashboard/internal/tab"
)

// dateFlags are shared by every command that takes a date window.
type dateFlags struct {
	rng  string
	from string
	to   string
}

func (d *dateFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&d.rng, "range", "", "Date range: last7days, thisMonth, lastMonth, yearToDate or custom")
	cmd.Flags().StringVar(&d.from, "from", "", "Custom range start (YYYY-MM-DD)")
	cmd.Flags().StringVar(&d.to, "to", "", "Custom range end (YYYY-MM-DD)")
}

// filter maps the flags onto a date filter. An unrecognised --range is
// passed through and narrows nothing.
func (d *dateFlags) filter() *domain.DateFilter {
	if d.rng == "" {
		if d.from != "" || d.to != "" {
			return &domain.DateFilter{Range: domain.RangeCustom, CustomStartDate: d.from, CustomEndDate: d.to}
		}
		return nil
	}
	rng := domain.DateRange(d.rng)
	for _, r := range domain.DateRanges {
		if strings.EqualFold(string(r), d.rng) {
			rng = r
		}
	}
	return &domain.DateFilter{Range: rng, CustomStartDate: d.from, CustomEndDate: d.to}
}

func categoryArg(args []string) (domain.Category, error) {
	return domain.ParseCategory(args[0])
}

func (c *CLI) newCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List report categories and their filters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return renderCategories(c.out, catalog.All())
		},
	}
}

type viewCmd struct {
	date     dateFlags
	search   string
	filters  []string
	sort     string
	desc     bool
	page     int
	pageSize int
}

func (c *CLI) newViewCmd() *cobra.Command {
	vc := &viewCmd{}
	cmd := &cobra.Command{
		Use:   "view <category>",
		Short: "Show one page of a report tab",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			category, err := categoryArg(args)
			if err != nil {
				return err
			}
			date := vc.date.filter()
			return c.withApp(cmd, func(ctx context.Context, a *app.App) error {
				t, err := vc.open(ctx, a, category, date, c)
				if err != nil {
					return err
				}
				return renderView(c.out, t.View())
			})
		},
	}

	vc.date.register(cmd)
	cmd.Flags().StringVarP(&vc.search, "search", "s", "", "Case-insensitive name search")
	cmd.Flags().StringArrayVarP(&vc.filters, "filter", "f", nil, "field=value, repeatable")
	cmd.Flags().StringVar(&vc.sort, "sort", "", "Sortable column to order by")
	cmd.Flags().BoolVar(&vc.desc, "desc", false, "Sort descending")
	cmd.Flags().IntVarP(&vc.page, "page", "p", 1, "1-based page")
	cmd.Flags().IntVar(&vc.pageSize, "page-size", tab.DefaultPageSize, "Rows per page: 10, 20 or 50")
	return cmd
}

// open drives the report page the way a user would: pick the date range,
// select the tab, then search, filter, sort and page.
func (vc *viewCmd) open(ctx context.Context, a *app.App, category domain.Category, date *domain.DateFilter, c *CLI) (*tab.Tab, error) {
	shell := tab.NewShell(a.Service, c.log)
	if date != nil {
		shell.SetDateRange(ctx, *date)
	}
	t, err := shell.Select(ctx, category)
	if err != nil {
		return nil, err
	}

	if err := t.SetPageSize(vc.pageSize); err != nil {
		return nil, err
	}
	t.SetSearch(vc.search)
	for _, raw := range vc.filters {
		field, value, ok := strings.Cut(raw, "=")
		if !ok {
			return nil, fmt.Errorf("filter %q: want field=value", raw)
		}
		if err := t.SetFilter(field, value); err != nil {
			return nil, err
		}
	}
	if vc.sort != "" {
		if err := t.ToggleSort(vc.sort); err != nil {
			return nil, err
		}
		if vc.desc {
			_ = t.ToggleSort(vc.sort)
		}
	}
	t.SetPage(vc.page - 1)
	return t, nil
}

func (c *CLI) newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats <category>",
		Short: "Show status counters of a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			category, err := categoryArg(args)
			if err != nil {
				return err
			}
			return c.withApp(cmd, func(ctx context.Context, a *app.App) error {
				stats, err := a.Service.Stats(ctx, category)
				if err != nil {
					return err
				}
				return renderStats(c.out, category, stats)
			})
		},
	}
}

func (c *CLI) newExportCmd() *cobra.Command {
	var (
		date   dateFlags
		format string
	)
	cmd := &cobra.Command{
		Use:   "export <category>",
		Short: "Request an export link for a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			category, err := categoryArg(args)
			if err != nil {
				return err
			}
			f, err := domain.ParseExportFormat(format)
			if err != nil {
				return err
			}
			filter := date.filter()
			return c.withApp(cmd, func(ctx context.Context, a *app.App) error {
				url, err := a.Service.Export(ctx, category, f, filter)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(c.out, url)
				return err
			})
		},
	}
	date.register(cmd)
	cmd.Flags().StringVar(&format, "format", string(domain.FormatCSV), "csv, excel or pdf")
	return cmd
}

func (c *CLI) newDownloadCmd() *cobra.Command {
	var (
		date   dateFlags
		format string
		search string
		out    string
	)
	cmd := &cobra.Command{
		Use:   "download <category>",
		Short: "Write the filtered list to a CSV or XLSX file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			category, err := categoryArg(args)
			if err != nil {
				return err
			}
			f, err := domain.ParseExportFormat(format)
			if err != nil {
				return err
			}
			filter := date.filter()
			return c.withApp(cmd, func(ctx context.Context, a *app.App) error {
				dl, err := a.Service.Download(ctx, ports.ListQuery{
					Category: category,
					Date:     filter,
					Search:   search,
				}, f)
				if err != nil {
					return err
				}
				path := out
				if path == "" {
					path = dl.Filename
				}
				if err := os.WriteFile(path, dl.Body, 0o644); err != nil {
					return fmt.Errorf("write %s: %w", path, err)
				}
				_, err = fmt.Fprintf(c.out, "wrote %s (%d bytes)\n", path, len(dl.Body))
				return err
			})
		},
	}
	date.register(cmd)
	cmd.Flags().StringVar(&format, "format", string(domain.FormatCSV), "csv or excel")
	cmd.Flags().StringVarP(&search, "search", "s", "", "Case-insensitive name search")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output path (default: generated file name)")
	return cmd
}

func (c *CLI) newScheduleCmd() *cobra.Command {
	var (
		date       dateFlags
		cadence    string
		format     string
		recipients []string
	)
	cmd := &cobra.Command{
		Use:   "schedule <category>",
		Short: "Schedule periodic delivery of a report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			category, err := categoryArg(args)
			if err != nil {
				return err
			}
			f, err := domain.ParseExportFormat(format)
			if err != nil {
				return err
			}
			filter := date.filter()
			return c.withApp(cmd, func(ctx context.Context, a *app.App) error {
				ack, err := a.Service.Schedule(ctx, domain.ScheduleRequest{
					Category:    category,
					Cadence:     domain.Cadence(strings.ToLower(cadence)),
					Recipients:  recipients,
					Format:      f,
					Filters:     filter,
					RequestedBy: os.Getenv("USER"),
				})
				if err != nil {
					return err
				}
				_, err = fmt.Fprintf(c.out, "%s\n%s\nnext run: %s\n", ack.ID, ack.Message, ack.NextRun.Format("2006-01-02 15:04 MST"))
				return err
			})
		},
	}
	date.register(cmd)
	cmd.Flags().StringVar(&cadence, "cadence", string(domain.CadenceWeekly), "daily, weekly or monthly")
	cmd.Flags().StringVar(&format, "format", string(domain.FormatCSV), "csv, excel or pdf")
	cmd.Flags().StringSliceVar(&recipients, "to", nil, "Recipient email, repeatable or comma separated")
	return cmd
}

func (c *CLI) newImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <category> <file.json>",
		Short: "Replace a category's stored records with a JSON array",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			category, err := categoryArg(args)
			if err != nil {
				return err
			}
			d, err := catalog.Lookup(category)
			if err != nil {
				return err
			}
			data, err := os.ReadFile(args[1])
			if err != nil {
				return fmt.Errorf("read %s: %w", args[1], err)
			}
			records, err := d.Decode(data)
			if err != nil {
				return fmt.Errorf("decode %s: %w", args[1], err)
			}
			return c.withApp(cmd, func(ctx context.Context, a *app.App) error {
				if err := a.Repo.Save(ctx, category, records); err != nil {
					return err
				}
				_, err := fmt.Fprintf(c.out, "imported %d %s records\n", len(records), category)
				return err
			})
		},
	}
}
