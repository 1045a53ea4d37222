package prog

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"src.conslist.dev/pkg/list"
)

// op is an operation that can be applied to the list being processed. If
// hasArg is true, the op is written with an argument after a colon, like
// prepend:VALUE.
type op struct {
	name   string
	usage  string
	help   string
	hasArg bool
	apply  func(l *list.List[any], arg string) error
}

var ops = []op{
	{
		name: "prepend", usage: "prepend:VALUE", hasArg: true,
		help: "add VALUE, parsed as YAML, to the front; use ~ for null",
		apply: func(l *list.List[any], arg string) error {
			if strings.TrimSpace(arg) == "" {
				return fmt.Errorf("prepend: empty value; use ~ for null")
			}
			var v any
			if err := yaml.Unmarshal([]byte(arg), &v); err != nil {
				return fmt.Errorf("prepend: bad value %q: %w", arg, err)
			}
			l.Prepend(v)
			return nil
		},
	},
	{
		name: "pop", usage: "pop",
		help: "remove the first element",
		apply: func(l *list.List[any], _ string) error {
			if v, ok := l.Pop(); ok {
				logger.Printf("popped %v", v)
			} else {
				logger.Println("pop on empty list")
			}
			return nil
		},
	},
	{
		name: "tail", usage: "tail",
		help: "keep the elements after the first one",
		apply: func(l *list.List[any], _ string) error {
			tail, _ := l.Tail()
			*l = tail
			return nil
		},
	},
	{
		name: "next", usage: "next",
		help: "advance past the first element, like one iteration step",
		apply: func(l *list.List[any], _ string) error {
			if _, ok := l.Next(); !ok {
				logger.Println("next on exhausted list")
			}
			return nil
		},
	},
	{
		name: "reverse", usage: "reverse",
		help: "reverse the order of elements",
		apply: func(l *list.List[any], _ string) error {
			*l = l.Reverse()
			return nil
		},
	},
}

// boundOp is an op together with its argument.
type boundOp struct {
	op  *op
	arg string
}

func parseOps(args []string) ([]boundOp, error) {
	bound := make([]boundOp, len(args))
	for i, s := range args {
		name, arg, hasArg := strings.Cut(s, ":")
		o := findOp(name)
		switch {
		case o == nil:
			return nil, BadUsage(fmt.Sprintf("unknown op %q", name))
		case o.hasArg && !hasArg:
			return nil, BadUsage(fmt.Sprintf("op %s requires an argument, like %s", name, o.usage))
		case !o.hasArg && hasArg:
			return nil, BadUsage(fmt.Sprintf("op %s takes no argument", name))
		}
		bound[i] = boundOp{o, arg}
	}
	return bound, nil
}

func findOp(name string) *op {
	for i := range ops {
		if ops[i].name == name {
			return &ops[i]
		}
	}
	return nil
}
