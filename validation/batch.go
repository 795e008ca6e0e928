package validation

import (
	"errors"
	"fmt"
)

// ErrNoValidRows is returned by Commit when the batch holds nothing
// committable; the sink is never called in that case.
var ErrNoValidRows = errors.New("no valid rows to commit")

// IndexedRow pairs a row with its position in the original upload so the
// UI can keep referring to sheet line numbers after partition.
type IndexedRow struct {
	Index int      `json:"index"`
	Row   Row      `json:"row"`
	Errs  ErrorMap `json:"errors,omitempty"`
}

// RowFailure reports a row the sink could not persist (typically an
// allocation conflict caught at write time).
type RowFailure struct {
	Index  int    `json:"index"`
	Reason string `json:"reason"`
}

// CommitResult summarizes a partial-success commit.
type CommitResult struct {
	Persisted int          `json:"persisted"`
	Failed    int          `json:"failed"`
	Failures  []RowFailure `json:"failures,omitempty"`
}

// Sink persists validated rows. Rows already persisted stand even when a
// later row fails; the sink reports per-row failures instead of aborting.
type Sink interface {
	SaveRows(rows []IndexedRow) (persisted int, failures []RowFailure, err error)
}

// Batch holds the working set of upload rows with index-aligned error
// maps, supporting interactive edit-and-revalidate before commit. It performs
// no I/O of its own.
type Batch struct {
	ctx  Context
	rows []Row
	errs []ErrorMap
}

// NewBatch validates every row up front.
func NewBatch(rows []Row, ctx Context) *Batch {
	b := &Batch{ctx: ctx, rows: rows, errs: make([]ErrorMap, len(rows))}
	for i := range rows {
		b.errs[i] = Validate(rows[i], ctx)
	}
	return b
}

func (b *Batch) Len() int { return len(b.rows) }

// Rows returns the current working set with errors, index-aligned.
func (b *Batch) Rows() []IndexedRow {
	out := make([]IndexedRow, len(b.rows))
	for i := range b.rows {
		out[i] = IndexedRow{Index: i, Row: b.rows[i], Errs: b.errs[i]}
	}
	return out
}

// Errors returns the error map for one row.
func (b *Batch) Errors(i int) (ErrorMap, error) {
	if i < 0 || i >= len(b.rows) {
		return nil, fmt.Errorf("row %d out of range", i)
	}
	return b.errs[i], nil
}

// SetField updates one field of one row, clears fields that depend on it,
// and revalidates that row only. Changing the course invalidates the
// branch and batch picked for the old course; changing gender or category
// invalidates the room, which is scoped to that pair.
func (b *Batch) SetField(i int, field, value string) (ErrorMap, error) {
	if i < 0 || i >= len(b.rows) {
		return nil, fmt.Errorf("row %d out of range", i)
	}
	row := &b.rows[i]
	switch field {
	case FieldName:
		row.Name = value
	case FieldRollNumber:
		row.RollNumber = value
	case FieldGender:
		row.Gender = value
		row.Category = ""
		row.RoomNumber = ""
	case FieldCourse:
		row.Course = value
		row.Branch = ""
		row.Batch = ""
	case FieldBranch:
		row.Branch = value
	case FieldYear:
		row.Year = value
	case FieldCategory:
		row.Category = value
		row.RoomNumber = ""
	case FieldRoomNumber:
		row.RoomNumber = value
	case FieldStudentPhone:
		row.StudentPhone = value
	case FieldParentPhone:
		row.ParentPhone = value
	case FieldEmail:
		row.Email = value
	case FieldBatch:
		row.Batch = value
	case FieldAcademicYear:
		row.AcademicYear = value
	default:
		return nil, fmt.Errorf("unknown field %q", field)
	}
	b.errs[i] = Validate(*row, b.ctx)
	return b.errs[i], nil
}

// RemoveRow drops a row from the working set. Later rows shift down, and
// Rows()/Partition() report the new indexes.
func (b *Batch) RemoveRow(i int) error {
	if i < 0 || i >= len(b.rows) {
		return fmt.Errorf("row %d out of range", i)
	}
	b.rows = append(b.rows[:i], b.rows[i+1:]...)
	b.errs = append(b.errs[:i], b.errs[i+1:]...)
	return nil
}

// Partition splits the working set on empty error maps.
func (b *Batch) Partition() (valid, invalid []IndexedRow) {
	for _, r := range b.Rows() {
		if len(r.Errs) == 0 {
			valid = append(valid, r)
		} else {
			invalid = append(invalid, r)
		}
	}
	return valid, invalid
}

// Commit hands only the valid rows to the sink. A batch with zero valid
// rows is refused outright rather than silently succeeding as a no-op.
func (b *Batch) Commit(sink Sink) (CommitResult, error) {
	valid, _ := b.Partition()
	if len(valid) == 0 {
		return CommitResult{}, ErrNoValidRows
	}
	persisted, failures, err := sink.SaveRows(valid)
	if err != nil {
		return CommitResult{}, err
	}
	return CommitResult{Persisted: persisted, Failed: len(failures), Failures: failures}, nil
}
