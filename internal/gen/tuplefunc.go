package gen

import (
	"bytes"
	"fmt"
	"strings"
)

// converter describes one tuplefunc To* function: a function shape
// with N argument and M return parameters, and the four naming flags.
// A collapses the arguments into a tuple, R the returns; C preserves a
// leading context.Context, E a trailing error. A may be omitted only
// when N == 1 and R only when M == 1, so the converted form is always
// single-argument and single-return apart from the C and E carve-outs.
type converter struct {
	N, M       int
	C, A, R, E bool
}

// flagOptions returns the valid choices for the A (or R) flag at the
// given parameter count.
func flagOptions(n int) []bool {
	if n == 1 {
		return []bool{false, true}
	}
	return []bool{true}
}

// emitTupleFunc renders the To* converters for every argument/return
// count up to cfg.FnArity. Cells where both A and R are absent would
// be identities and are skipped.
func emitTupleFunc(cfg Config) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("// Code generated by tuplegen. DO NOT EDIT.\n\npackage tuplefunc\n\n")
	buf.WriteString("import (\n\t\"context\"\n\n\t\"github.com/Dragoteryx/tupl\"\n)\n")
	for n := 0; n <= cfg.FnArity; n++ {
		for m := 0; m <= cfg.FnArity; m++ {
			for _, c := range []bool{false, true} {
				for _, a := range flagOptions(n) {
					for _, r := range flagOptions(m) {
						for _, e := range []bool{false, true} {
							if !a && !r {
								continue
							}
							buf.WriteByte('\n')
							writeConverter(&buf, converter{N: n, M: m, C: c, A: a, R: r, E: e})
						}
					}
				}
			}
		}
	}
	return buf.Bytes(), nil
}

func (c converter) name() string {
	var b strings.Builder
	b.WriteString("To")
	if c.C {
		b.WriteByte('C')
	}
	if c.A {
		b.WriteByte('A')
	}
	if c.R {
		b.WriteByte('R')
	}
	if c.E {
		b.WriteByte('E')
	}
	fmt.Fprintf(&b, "_%d_%d", c.N, c.M)
	return b.String()
}

func (c converter) doc() string {
	var clauses []string
	if c.A {
		if c.N == 0 {
			clauses = append(clauses, "takes an empty tuple in place of no arguments")
		} else {
			clauses = append(clauses, fmt.Sprintf("takes its %d argument%s as a single tuple", c.N, plural(c.N)))
		}
	}
	if c.R {
		if c.M == 0 {
			clauses = append(clauses, "returns an empty tuple in place of no results")
		} else {
			clauses = append(clauses, fmt.Sprintf("returns its %d result%s as a single tuple", c.M, plural(c.M)))
		}
	}
	doc := c.name() + " wraps f so that it " + strings.Join(clauses, " and ")
	switch {
	case c.C && c.E:
		doc += ", preserving the context argument and the error result."
	case c.C:
		doc += ", preserving the context argument."
	case c.E:
		doc += ", preserving the error result."
	default:
		doc += "."
	}
	return doc
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}

// typeParams lists the declared type parameters: one per argument and
// one per return parameter.
func (c converter) typeParams() []string {
	params := make([]string, 0, c.N+c.M)
	for i := 0; i < c.N; i++ {
		params = append(params, fmt.Sprintf("A%d", i))
	}
	for i := 0; i < c.M; i++ {
		params = append(params, fmt.Sprintf("R%d", i))
	}
	return params
}

// fnType renders the type of the function being converted.
func (c converter) fnType() string {
	var args []string
	if c.C {
		args = append(args, "context.Context")
	}
	for i := 0; i < c.N; i++ {
		args = append(args, fmt.Sprintf("A%d", i))
	}
	var rets []string
	for i := 0; i < c.M; i++ {
		rets = append(rets, fmt.Sprintf("R%d", i))
	}
	if c.E {
		rets = append(rets, "error")
	}
	return "func(" + strings.Join(args, ", ") + ")" + retList(rets)
}

// tupleType renders tupl.TK[P0, ...] for K parameters named after
// prefix.
func tupleType(prefix string, k int) string {
	if k == 0 {
		return "tupl.T0"
	}
	params := make([]string, k)
	for i := range params {
		params[i] = fmt.Sprintf("%s%d", prefix, i)
	}
	return fmt.Sprintf("tupl.T%d[%s]", k, strings.Join(params, ", "))
}

// outArg is the argument type of the converted function, not counting
// a preserved context.
func (c converter) outArg() string {
	if c.A {
		return tupleType("A", c.N)
	}
	return "A0"
}

// outRets lists the return types of the converted function.
func (c converter) outRets() []string {
	var rets []string
	if c.R {
		rets = append(rets, tupleType("R", c.M))
	} else {
		rets = append(rets, "R0")
	}
	if c.E {
		rets = append(rets, "error")
	}
	return rets
}

// outType renders the type of the converted function.
func (c converter) outType() string {
	var args []string
	if c.C {
		args = append(args, "context.Context")
	}
	args = append(args, c.outArg())
	return "func(" + strings.Join(args, ", ") + ")" + retList(c.outRets())
}

func retList(rets []string) string {
	switch len(rets) {
	case 0:
		return ""
	case 1:
		return " " + rets[0]
	default:
		return " (" + strings.Join(rets, ", ") + ")"
	}
}

func writeConverter(buf *bytes.Buffer, c converter) {
	fmt.Fprintf(buf, "// %s\n", c.doc())
	params := ""
	if ps := c.typeParams(); len(ps) > 0 {
		params = "[" + strings.Join(ps, ", ") + " any]"
	}
	fmt.Fprintf(buf, "func %s%s(f %s) %s {\n", c.name(), params, c.fnType(), c.outType())

	var litArgs []string
	if c.C {
		litArgs = append(litArgs, "ctx context.Context")
	}
	if c.A {
		name := "a"
		if c.N == 0 {
			name = "_"
		}
		litArgs = append(litArgs, name+" "+tupleType("A", c.N))
	} else {
		litArgs = append(litArgs, "a0 A0")
	}
	fmt.Fprintf(buf, "\treturn func(%s)%s {\n", strings.Join(litArgs, ", "), retList(c.outRets()))

	var callArgs []string
	if c.C {
		callArgs = append(callArgs, "ctx")
	}
	if c.A {
		for _, l := range paramLetters(c.N) {
			callArgs = append(callArgs, "a."+l)
		}
	} else {
		callArgs = append(callArgs, "a0")
	}
	call := "f(" + strings.Join(callArgs, ", ") + ")"

	if !c.R {
		// M == 1: the return side passes through, error included.
		fmt.Fprintf(buf, "\t\treturn %s\n", call)
	} else {
		results := make([]string, c.M)
		for i := range results {
			results[i] = fmt.Sprintf("r%d", i)
		}
		retVal := fmt.Sprintf("tupl.NewT%d(%s)", c.M, strings.Join(results, ", "))
		switch {
		case c.E && c.M == 0:
			fmt.Fprintf(buf, "\t\terr := %s\n", call)
			retVal += ", err"
		case c.E:
			fmt.Fprintf(buf, "\t\t%s, err := %s\n", strings.Join(results, ", "), call)
			retVal += ", err"
		case c.M == 0:
			fmt.Fprintf(buf, "\t\t%s\n", call)
		default:
			fmt.Fprintf(buf, "\t\t%s := %s\n", strings.Join(results, ", "), call)
		}
		fmt.Fprintf(buf, "\t\treturn %s\n", retVal)
	}
	buf.WriteString("\t}\n}\n")
}
