// Package grading implements the grade-to-status computation shared by the
// per-course grade listing and the bulletin aggregator.
package grading

// Status is the outcome of resolving a student's grades for one course.
type Status string

const (
	// StatusValidated means the effective grade reached the department's
	// validation grade.
	StatusValidated Status = "validated"
	// StatusNotValidated means a final grade exists but is below the
	// department's validation grade.
	StatusNotValidated Status = "not_validated"
	// StatusFailing means no final grade could be computed at all.
	StatusFailing Status = "failing"
)

// resitThreshold is the fixed grade below which a resit score, when present,
// replaces the original final grade. It is independent of the department's
// validation grade.
const resitThreshold = 12.0

// Resolve computes the effective final grade and status for one course.
//
// When hasTwoGrades is set, the final grade is the arithmetic mean of grade1
// and grade2 and exists only when both are present; otherwise the final grade
// is grade1 alone. A missing final grade is terminal: the result is
// (nil, StatusFailing) and the resit grade is ignored. When the final grade
// is below 12 and a resit grade exists, the resit grade replaces it instead
// of being averaged in. The effective grade is then compared against the
// department's validation grade (12.0 when the department carries none).
func Resolve(grade1, grade2, resit *float64, hasTwoGrades bool, validationGrade *float64) (*float64, Status) {
	threshold := resitThreshold
	if validationGrade != nil {
		threshold = *validationGrade
	}

	var final *float64
	if hasTwoGrades {
		if grade1 != nil && grade2 != nil {
			mean := (*grade1 + *grade2) / 2
			final = &mean
		}
	} else if grade1 != nil {
		v := *grade1
		final = &v
	}

	if final == nil {
		return nil, StatusFailing
	}

	effective := *final
	if *final < resitThreshold && resit != nil {
		effective = *resit
	}

	if effective >= threshold {
		return &effective, StatusValidated
	}
	return &effective, StatusNotValidated
}
