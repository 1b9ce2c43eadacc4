package dice

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Roller wraps a Source and logger to provide logged rolling. Every
// evaluation is logged at debug level with a unique roll ID, the notation,
// the rendered result, per-expression totals, and crit/fumble flags.
type Roller struct {
	src    Source
	logger *zap.Logger
}

// NewLoggedRoller creates a Roller that rolls with src and logs each
// evaluation to logger.
//
// Precondition: src and logger must be non-nil.
func NewLoggedRoller(src Source, logger *zap.Logger) *Roller {
	return &Roller{src: src, logger: logger}
}

// Roll rolls rs in place and logs the outcome.
//
// Precondition: rs must be non-nil.
func (r *Roller) Roll(rs *RollSet) {
	rs.Roll(r.src)
	r.logger.Debug("dice roll",
		zap.String("roll_id", uuid.NewString()),
		zap.String("result", rs.Render()),
		zap.Ints("totals", rs.GroupTotals()),
		zap.Bool("all_maximum", rs.IsAllMaximum()),
		zap.Bool("all_minimum", rs.IsAllMinimum()),
	)
}

// RollNotation parses notation and rolls it, logging the outcome.
//
// Postcondition: Returns a fully rolled RollSet, or a *ParseError.
func (r *Roller) RollNotation(notation string) (*RollSet, error) {
	rs, err := Parse(notation)
	if err != nil {
		return nil, err
	}
	r.Roll(rs)
	return rs, nil
}
