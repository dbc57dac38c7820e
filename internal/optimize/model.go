// Package optimize builds the multi-period blending model: decision
// variables, the constraint families encoding the physical and business
// rules, and the profit objective. The package produces a declarative
// Model that a solver adapter consumes; it never solves anything itself.
package optimize

import (
	"fmt"
	"math"
	"time"

	"github.com/blendworks/blendplan/pkg/models"
)

// ════════════════════════════════════════════════════════════════════
// Variables
// ════════════════════════════════════════════════════════════════════

// VarKind is the domain of a decision variable.
type VarKind int

const (
	Continuous VarKind = iota // non-negative real, possibly bounded above
	Binary                    // 0/1 indicator
)

// Var is one decision variable declaration. ID is the variable's position
// in any value vector for the model it belongs to.
type Var struct {
	ID    int
	Name  string // e.g., "Buy[VEG1,3]"
	Kind  VarKind
	Lower float64
	Upper float64 // math.Inf(1) when unbounded above
}

// ════════════════════════════════════════════════════════════════════
// Constraints
// ════════════════════════════════════════════════════════════════════

// Sense is the relational operator of a linear constraint.
type Sense int

const (
	LessEqual Sense = iota
	GreaterEqual
	Equal
)

func (s Sense) String() string {
	switch s {
	case LessEqual:
		return "<="
	case GreaterEqual:
		return ">="
	default:
		return "="
	}
}

// Term is one coefficient·variable product in a linear expression.
type Term struct {
	Coef float64
	Var  *Var
}

// Constraint is a single linear constraint: Σ terms (sense) RHS.
// A constraint with no terms is deliberately legal; an empty index set
// degenerates to a vacuous constraint rather than an omitted one.
type Constraint struct {
	Name  string // e.g., "Balance[VEG1,3]"
	Terms []Term
	Sense Sense
	RHS   float64
}

// Activity evaluates the left-hand side against a value vector.
func (c *Constraint) Activity(values []float64) float64 {
	var sum float64
	for _, t := range c.Terms {
		sum += t.Coef * values[t.Var.ID]
	}
	return sum
}

// Satisfied reports whether the constraint holds for the value vector
// within the given tolerance.
func (c *Constraint) Satisfied(values []float64, tol float64) bool {
	lhs := c.Activity(values)
	switch c.Sense {
	case LessEqual:
		return lhs <= c.RHS+tol
	case GreaterEqual:
		return lhs >= c.RHS-tol
	default:
		return math.Abs(lhs-c.RHS) <= tol
	}
}

// Objective is the single objective expression of a model.
type Objective struct {
	Maximize bool
	Terms    []Term
}

// Value evaluates the objective against a value vector.
func (o Objective) Value(values []float64) float64 {
	var sum float64
	for _, t := range o.Terms {
		sum += t.Coef * values[t.Var.ID]
	}
	return sum
}

// ════════════════════════════════════════════════════════════════════
// Model
// ════════════════════════════════════════════════════════════════════

// Model is an assembled blending model. It is built once per scenario and
// must be treated as immutable once handed to a solver.
type Model struct {
	Oils     []models.Oil
	Periods  []int
	Discrete bool

	vars        []*Var
	constraints []*Constraint
	objective   Objective
	byName      map[string]*Var
}

// Vars returns all variable declarations in creation order.
func (m *Model) Vars() []*Var { return m.vars }

// Constraints returns all constraint declarations in creation order.
func (m *Model) Constraints() []*Constraint { return m.constraints }

// Objective returns the model's objective.
func (m *Model) Objective() Objective { return m.objective }

// Var looks up a variable by its full name, e.g. "Stock[OIL2,4]".
func (m *Model) Var(name string) *Var { return m.byName[name] }

// Buy, Use, Stock, Produce and IsUsed look up the canonical decision
// variables. IsUsed returns nil for continuous-mode models.
func (m *Model) Buy(oilID string, t int) *Var   { return m.byName[varName("Buy", oilID, t)] }
func (m *Model) Use(oilID string, t int) *Var   { return m.byName[varName("Use", oilID, t)] }
func (m *Model) Stock(oilID string, t int) *Var { return m.byName[varName("Stock", oilID, t)] }
func (m *Model) Produce(t int) *Var             { return m.byName[fmt.Sprintf("Produce[%d]", t)] }
func (m *Model) IsUsed(oilID string, t int) *Var {
	return m.byName[varName("IsUsed", oilID, t)]
}

func varName(family, oilID string, t int) string {
	return fmt.Sprintf("%s[%s,%d]", family, oilID, t)
}

func varName2(family string, t int) string {
	return fmt.Sprintf("%s[%d]", family, t)
}

func (m *Model) newVar(name string, kind VarKind, lower, upper float64) *Var {
	v := &Var{ID: len(m.vars), Name: name, Kind: kind, Lower: lower, Upper: upper}
	m.vars = append(m.vars, v)
	m.byName[name] = v
	return v
}

func (m *Model) addConstraint(name string, sense Sense, rhs float64, terms ...Term) *Constraint {
	c := &Constraint{Name: name, Terms: terms, Sense: sense, RHS: rhs}
	m.constraints = append(m.constraints, c)
	return c
}

// CheckFeasible verifies a complete value vector against every variable
// bound and every constraint. It returns nil when the assignment is
// feasible within tol, and an error naming the first violation otherwise.
func (m *Model) CheckFeasible(values []float64, tol float64) error {
	if len(values) != len(m.vars) {
		return fmt.Errorf("assignment has %d values, model has %d variables", len(values), len(m.vars))
	}
	for _, v := range m.vars {
		x := values[v.ID]
		if x < v.Lower-tol || x > v.Upper+tol {
			return fmt.Errorf("variable %s = %.4f outside bounds [%.4f, %.4f]", v.Name, x, v.Lower, v.Upper)
		}
		if v.Kind == Binary && math.Abs(x-math.Round(x)) > tol {
			return fmt.Errorf("variable %s = %.4f is not integral", v.Name, x)
		}
	}
	for _, c := range m.constraints {
		if !c.Satisfied(values, tol) {
			return fmt.Errorf("constraint %s violated: activity %.4f %s %.4f", c.Name, c.Activity(values), c.Sense, c.RHS)
		}
	}
	return nil
}

// ════════════════════════════════════════════════════════════════════
// Solution
// ════════════════════════════════════════════════════════════════════

// Solution is a solver's answer for one model: a status, and when the
// status carries values, a value for every variable plus the objective.
type Solution struct {
	Status    models.SolveStatus
	Values    []float64 // indexed by Var.ID; nil unless HasValues
	Objective float64
	Runtime   time.Duration
}

// HasValues reports whether the solution carries a variable assignment.
func (s *Solution) HasValues() bool {
	return s != nil && (s.Status == models.StatusOptimal || s.Status == models.StatusFeasible)
}

// Value returns the solved value of a variable, or 0 when the solution
// carries no assignment or v is nil.
func (s *Solution) Value(v *Var) float64 {
	if !s.HasValues() || v == nil || v.ID >= len(s.Values) {
		return 0
	}
	return s.Values[v.ID]
}
