package formula

import (
	"errors"
	"fmt"
	"sync"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/rulego/chartdata/utils/cast"
	"hermannm.dev/wrap"
)

// ErrNotNumeric 表达式结果不是数字
var ErrNotNumeric = errors.New("expression result is not numeric")

// Evaluator evaluates an arithmetic expression against named bindings.
type Evaluator interface {
	Evaluate(expression string, bindings map[string]interface{}) (float64, error)
}

// EvaluatorFunc adapts a function to Evaluator.
type EvaluatorFunc func(expression string, bindings map[string]interface{}) (float64, error)

func (fn EvaluatorFunc) Evaluate(expression string, bindings map[string]interface{}) (float64, error) {
	return fn(expression, bindings)
}

// ExprEvaluator evaluates expressions with expr-lang and caches the compiled
// programs. Safe for concurrent use.
type ExprEvaluator struct {
	programs map[string]*vm.Program
	mutex    sync.RWMutex
}

func NewExprEvaluator() *ExprEvaluator {
	return &ExprEvaluator{programs: make(map[string]*vm.Program)}
}

var defaultEvaluator = NewExprEvaluator()

// DefaultEvaluator returns the shared expr-lang evaluator.
func DefaultEvaluator() Evaluator {
	return defaultEvaluator
}

func (e *ExprEvaluator) Evaluate(expression string, bindings map[string]interface{}) (float64, error) {
	program, err := e.compile(expression)
	if err != nil {
		return 0, err
	}
	result, err := expr.Run(program, bindings)
	if err != nil {
		return 0, wrap.Errorf(err, "failed to evaluate '%s'", expression)
	}
	n, ok := cast.ToFloat64(result)
	if !ok || !cast.IsFinite(n) {
		return 0, wrap.Errorf(ErrNotNumeric, "'%s' returned %v", expression, result)
	}
	return n, nil
}

func (e *ExprEvaluator) compile(expression string) (*vm.Program, error) {
	e.mutex.RLock()
	program, ok := e.programs[expression]
	e.mutex.RUnlock()
	if ok {
		return program, nil
	}

	program, err := expr.Compile(expression, expr.AllowUndefinedVariables())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormula, err)
	}

	e.mutex.Lock()
	e.programs[expression] = program
	e.mutex.Unlock()
	return program, nil
}

// Len returns the number of cached programs.
func (e *ExprEvaluator) Len() int {
	e.mutex.RLock()
	defer e.mutex.RUnlock()
	return len(e.programs)
}
