package justify

import (
	"math"
	"testing"

	"github.com/npillmayer/libjust/core/dimen"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

func du(v int) dimen.DU { return dimen.DU(v) }

type JustifySuite struct {
	suite.Suite
	teardown func()
}

func (s *JustifySuite) SetupTest() {
	s.teardown = testconfig.QuickConfig(s.T())
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
}

func (s *JustifySuite) TearDownTest() {
	s.teardown()
}

func TestJustifySuite(t *testing.T) {
	suite.Run(t, new(JustifySuite))
}

func (s *JustifySuite) TestHQSimpleTwoLines() {
	breaks := []Break{
		{X0: du(50), X1: du(54), Flags: IsSpace},
		{X0: du(100), X1: du(104), Flags: IsSpace},
		{X0: du(150), X1: du(150)},
	}
	result, lines, err := HQJust(breaks, Params{SetWidth: du(100), MaxNegSpace: 128})
	require.NoError(s.T(), err)
	assert.Equal(s.T(), []int{1, 2}, result)
	assert.Equal(s.T(), 2, lines)
}

func (s *JustifySuite) TestHQEqualDeviationEndsFirstLineAtEarlierBreak() {
	// Breaks 0 and 1 both deviate from the target by 5, but break 1
	// (x0=105) exceeds the first line's shrink bound (100+2), so the
	// first line ends at break 0.
	breaks := []Break{
		{X0: du(95), X1: du(99), Flags: IsSpace},
		{X0: du(105), X1: du(109), Flags: IsSpace},
		{X0: du(200), X1: du(200)},
	}
	result, lines, err := HQJust(breaks, Params{SetWidth: du(100), MaxNegSpace: 128})
	require.NoError(s.T(), err)
	assert.Equal(s.T(), []int{0, 2}, result)
	assert.Equal(s.T(), 2, lines)
}

func (s *JustifySuite) TestHQPrefersSpaceOverHighPenaltyHyphen() {
	// The tail line's width (199-99=100) is tuned to exactly match the
	// target width, keeping the boundary feasibility check deterministic.
	breaks := []Break{
		{X0: du(40), X1: du(44), Flags: IsSpace},
		{X0: du(90), X1: du(90), Penalty: 1_000_000, Flags: IsHyphen},
		{X0: du(95), X1: du(99), Flags: IsSpace},
		{X0: du(199), X1: du(199)},
	}
	result, lines, err := HQJust(breaks, Params{SetWidth: du(100), MaxNegSpace: 128})
	require.NoError(s.T(), err)
	assert.Equal(s.T(), []int{2, 3}, result)
	assert.Equal(s.T(), 2, lines)
	assert.NotContains(s.T(), result, 1, "the high-penalty hyphen must not be chosen when a space-based split suffices")
}

func (s *JustifySuite) TestHQSingleBreakFits() {
	breaks := []Break{{X0: du(80), X1: du(80)}}
	result, lines, err := HQJust(breaks, Params{SetWidth: du(100), MaxNegSpace: 128})
	require.NoError(s.T(), err)
	assert.Equal(s.T(), []int{0}, result)
	assert.Equal(s.T(), 1, lines)
}

func (s *JustifySuite) TestHQSingleBreakInfeasiblyTight() {
	// With only one candidate break, it is forced regardless of geometry:
	// there is no alternative sequence to consider.
	breaks := []Break{{X0: du(200), X1: du(200)}}
	result, lines, err := HQJust(breaks, Params{SetWidth: du(50), MaxNegSpace: 128})
	require.NoError(s.T(), err)
	assert.Equal(s.T(), []int{0}, result)
	assert.Equal(s.T(), 1, lines)
}

func (s *JustifySuite) TestHQEmptyInputIsError() {
	_, _, err := HQJust(nil, Params{SetWidth: du(100)})
	require.Error(s.T(), err)
}

func (s *JustifySuite) TestHQRejectsNonMonotoneInput() {
	breaks := []Break{
		{X0: du(100), X1: du(104), Flags: IsSpace},
		{X0: du(10), X1: du(14), Flags: IsSpace},
		{X0: du(150), X1: du(150)},
	}
	_, _, err := HQJust(breaks, Params{SetWidth: du(100)})
	require.Error(s.T(), err)
}

func (s *JustifySuite) TestHSWithTabReset() {
	breaks := []Break{
		{X0: du(30), X1: du(34), Flags: IsSpace | IsTab},
		{X0: du(75), X1: du(79), Flags: IsSpace},
		{X0: du(100), X1: du(100)},
	}
	result, lines, err := HSJust(breaks, Params{SetWidth: du(100), MaxNegSpace: 128, TabWidth: du(20)})
	require.NoError(s.T(), err)
	assert.Equal(s.T(), []int{1, 2}, result)
	assert.Equal(s.T(), 2, lines)
}

func (s *JustifySuite) TestHSResultAlwaysEndsAtTerminal() {
	breaks := []Break{
		{X0: du(20), X1: du(24), Flags: IsSpace},
		{X0: du(60), X1: du(64), Flags: IsSpace},
		{X0: du(130), X1: du(134), Flags: IsSpace},
		{X0: du(180), X1: du(180)},
	}
	result, lines, err := HSJust(breaks, Params{SetWidth: du(60), MaxNegSpace: 128})
	require.NoError(s.T(), err)
	require.NotEmpty(s.T(), result)
	assert.Equal(s.T(), len(breaks)-1, result[lines-1])
}

// bruteForceOptimalCost enumerates every feasible break sequence (each
// line within the shrink bound) terminating at the last break and
// returns the minimum achievable total cost, independently of HQJust, to
// validate optimality on small inputs.
func bruteForceOptimalCost(breaks []Break, params Params) int64 {
	n := len(breaks)
	best := int64(math.MaxInt64)
	var rec func(pos int, xPrev dimen.DU, cost int64)
	rec = func(pos int, xPrev dimen.DU, cost int64) {
		if cost >= best {
			return
		}
		if pos == n-1 {
			if cost < best {
				best = cost
			}
			return
		}
		for b := pos + 1; b < n; b++ {
			var space int64
			for k := pos + 1; k < b; k++ {
				if breaks[k].Flags&IsSpace != 0 {
					space += int64(breaks[k].X1 - breaks[k].X0)
				}
			}
			if int64(breaks[b].X0) > int64(xPrev+params.SetWidth)+shrinkBound(space, params.MaxNegSpace) {
				continue
			}
			edge := dev2(xPrev, b, breaks, params) + edgePenalty(b, breaks)
			rec(b, breaks[b].X1, cost+edge)
		}
	}
	rec(-1, 0, 0)
	return best
}

func sequenceCost(result []int, breaks []Break, params Params) int64 {
	total := int64(0)
	xPrev := dimen.DU(0)
	for _, b := range result {
		total += dev2(xPrev, b, breaks, params) + edgePenalty(b, breaks)
		xPrev = breaks[b].X1
	}
	return total
}

func (s *JustifySuite) TestHQMatchesBruteForceOptimum() {
	fixtures := [][]Break{
		{
			{X0: du(50), X1: du(54), Flags: IsSpace},
			{X0: du(100), X1: du(104), Flags: IsSpace},
			{X0: du(150), X1: du(154), Flags: IsSpace},
			{X0: du(220), X1: du(220)},
		},
		{
			{X0: du(30), X1: du(30), Penalty: 500, Flags: IsHyphen},
			{X0: du(40), X1: du(44), Flags: IsSpace},
			{X0: du(95), X1: du(95)},
		},
	}
	params := Params{SetWidth: du(100), MaxNegSpace: 128}
	for _, breaks := range fixtures {
		result, lines, err := HQJust(breaks, params)
		require.NoError(s.T(), err)
		require.NotEmpty(s.T(), result)
		assert.Equal(s.T(), len(breaks)-1, result[lines-1])
		got := sequenceCost(result, breaks, params)
		want := bruteForceOptimalCost(breaks, params)
		assert.Equal(s.T(), want, got)
	}
}

func (s *JustifySuite) TestRepairMonotonicityIsIdempotent() {
	breaks := []Break{
		{X0: du(50), X1: du(54), Flags: IsSpace},
		{X0: du(10), X1: du(14), Flags: IsSpace},
		{X0: du(80), X1: du(80)},
	}
	RepairMonotonicity(breaks)
	once := make([]Break, len(breaks))
	copy(once, breaks)
	RepairMonotonicity(breaks)
	assert.Equal(s.T(), once, breaks)
}

func (s *JustifySuite) TestHSDeterministic() {
	breaks := []Break{
		{X0: du(20), X1: du(24), Flags: IsSpace},
		{X0: du(60), X1: du(64), Flags: IsSpace},
		{X0: du(130), X1: du(130)},
	}
	params := Params{SetWidth: du(60), MaxNegSpace: 128}
	r1, l1, err1 := HSJust(append([]Break(nil), breaks...), params)
	r2, l2, err2 := HSJust(append([]Break(nil), breaks...), params)
	require.NoError(s.T(), err1)
	require.NoError(s.T(), err2)
	assert.Equal(s.T(), l1, l2)
	assert.Equal(s.T(), r1, r2)
}
