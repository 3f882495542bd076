package dto

const (
	SortDirAsc  = "ASC"
	SortDirDesc = "DESC"
)

// QueryParams carries listing options down to the generic repository. The
// exposed routes do not paginate, so Page and Limit stay zero and the
// repository emits no LIMIT clause; SortBy and SortDir are set by the
// services to honor each resource's listing order.
type QueryParams struct {
	Page    int    `json:"page"     validate:"omitempty"`
	Limit   int    `json:"limit"    validate:"omitempty"`
	SortBy  string `json:"sort_by"  validate:"omitempty"`
	SortDir string `json:"sort_dir" validate:"omitempty,oneof=ASC DESC"`
}
