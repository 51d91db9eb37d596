package grading

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fp(v float64) *float64 { return &v }

func TestResolveTwoGradesMean(t *testing.T) {
	final, status := Resolve(fp(12), fp(8), nil, true, fp(12.0))
	require.NotNil(t, final)
	assert.Equal(t, 10.0, *final)
	assert.Equal(t, StatusNotValidated, status)
}

func TestResolveResitReplacesFinal(t *testing.T) {
	final, status := Resolve(fp(12), fp(8), fp(14), true, fp(12.0))
	require.NotNil(t, final)
	assert.Equal(t, 14.0, *final, "resit replaces the mean, never blends with it")
	assert.Equal(t, StatusValidated, status)
}

func TestResolveAllAbsentIsFailing(t *testing.T) {
	final, status := Resolve(nil, nil, nil, false, fp(12.0))
	assert.Nil(t, final)
	assert.Equal(t, StatusFailing, status)
}

func TestResolveMissingSecondGradeIsFailing(t *testing.T) {
	// With two grades required, one missing grade is terminal regardless of
	// the resit score.
	for _, resit := range []*float64{nil, fp(0), fp(20)} {
		final, status := Resolve(fp(15), nil, resit, true, fp(10.0))
		assert.Nil(t, final)
		assert.Equal(t, StatusFailing, status)

		final, status = Resolve(nil, fp(15), resit, true, fp(10.0))
		assert.Nil(t, final)
		assert.Equal(t, StatusFailing, status)
	}
}

func TestResolveSingleGradeCourse(t *testing.T) {
	final, status := Resolve(fp(13.5), nil, nil, false, fp(12.0))
	require.NotNil(t, final)
	assert.Equal(t, 13.5, *final)
	assert.Equal(t, StatusValidated, status)

	// grade2 is ignored entirely for single-grade courses
	final, status = Resolve(fp(13.5), fp(2), nil, false, fp(12.0))
	require.NotNil(t, final)
	assert.Equal(t, 13.5, *final)
	assert.Equal(t, StatusValidated, status)
}

func TestResolveResitOnlyBelowTwelve(t *testing.T) {
	// Final grade of 12 or more never picks up the resit, even when the
	// department threshold is higher.
	final, status := Resolve(fp(13), nil, fp(18), false, fp(15.0))
	require.NotNil(t, final)
	assert.Equal(t, 13.0, *final)
	assert.Equal(t, StatusNotValidated, status)
}

func TestResolveResitCanLowerTheGrade(t *testing.T) {
	// The resit replaces unconditionally once the final grade is below 12,
	// even when it is worse.
	final, status := Resolve(fp(11), nil, fp(5), false, fp(12.0))
	require.NotNil(t, final)
	assert.Equal(t, 5.0, *final)
	assert.Equal(t, StatusNotValidated, status)
}

func TestResolveDefaultThreshold(t *testing.T) {
	// Nil validation grade falls back to 12.0.
	_, status := Resolve(fp(12), nil, nil, false, nil)
	assert.Equal(t, StatusValidated, status)

	_, status = Resolve(fp(11.99), nil, nil, false, nil)
	assert.Equal(t, StatusNotValidated, status)
}

func TestResolveExactThresholdValidates(t *testing.T) {
	final, status := Resolve(fp(14), fp(10), nil, true, fp(12.0))
	require.NotNil(t, final)
	assert.Equal(t, 12.0, *final)
	assert.Equal(t, StatusValidated, status)
}

func TestResolveIsTotal(t *testing.T) {
	// Every combination of present/absent inputs yields exactly one of the
	// three statuses, with a grade present iff the status is not failing.
	values := []*float64{nil, fp(0), fp(7.25), fp(12), fp(20)}
	for _, g1 := range values {
		for _, g2 := range values {
			for _, r := range values {
				for _, two := range []bool{true, false} {
					final, status := Resolve(g1, g2, r, two, nil)
					switch status {
					case StatusFailing:
						assert.Nil(t, final)
					case StatusValidated, StatusNotValidated:
						assert.NotNil(t, final)
					default:
						t.Fatalf("unexpected status %q", status)
					}
				}
			}
		}
	}
}
