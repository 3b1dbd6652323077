package domain

// Bucket is the aggregate a status value is counted under.
type Bucket string

const (
	BucketActive    Bucket = "active"
	BucketInactive  Bucket = "inactive"
	BucketCompleted Bucket = "completed"
	BucketPending   Bucket = "pending"
)

// Stats are the header counters shown above a report tab. Completed and
// Pending are nil for categories without those buckets.
type Stats struct {
	TotalRecords     int  `json:"totalRecords"`
	ActiveRecords    int  `json:"activeRecords"`
	InactiveRecords  int  `json:"inactiveRecords"`
	CompletedRecords *int `json:"completedRecords,omitempty"`
	PendingRecords   *int `json:"pendingRecords,omitempty"`
}

// Add counts one record under b.
func (s *Stats) Add(b Bucket) {
	switch b {
	case BucketActive:
		s.ActiveRecords++
	case BucketInactive:
		s.InactiveRecords++
	case BucketCompleted:
		if s.CompletedRecords != nil {
			*s.CompletedRecords++
		}
	case BucketPending:
		if s.PendingRecords != nil {
			*s.PendingRecords++
		}
	}
}
