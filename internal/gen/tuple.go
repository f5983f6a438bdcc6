package gen

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/pkg/errors"
)

const generatedHeader = "// Code generated by tuplegen. DO NOT EDIT.\n\npackage tupl\n"

var tupleBlock = template.Must(template.New("tuple").Parse(`// {{.TypeDoc}}
{{if eq .N 0}}type T0 struct{}

{{else}}type {{.Type}}{{.Decl}} struct {
{{.Fields}}
}

{{end}}var _ Tuple = {{.AssertVal}}

// {{.NewDoc}}
func New{{.Type}}{{.Decl}}({{.Args}}) {{.Type}}{{.Use}} {
	return {{.Literal}}
}

// Len returns {{.N}}.
func (t {{.Recv}}) Len() int {
	return {{.N}}
}

// Slice returns the tuple's elements as a []any slice.
func (t {{.Recv}}) Slice() []any {
	return {{.SliceExpr}}
}

// String implements fmt.Stringer.
func (t {{.Recv}}) String() string {
	return formatTuple(t.Slice())
}
`))

var nonEmptyBlock = template.Must(template.New("nonempty").Parse(`var _ {{.Assert}}

// Head returns the first element of t.
func (t {{.Recv}}) Head() {{.HeadType}} {
	return {{.HeadRef}}
}

// HeadPtr returns a pointer to the first element of t.
func (t *{{.Recv}}) HeadPtr() *{{.HeadType}} {
	return &{{.HeadRef}}
}

// Tail returns the last element of t.
func (t {{.Recv}}) Tail() {{.TailType}} {
	return {{.TailRef}}
}

// TailPtr returns a pointer to the last element of t.
func (t *{{.Recv}}) TailPtr() *{{.TailType}} {
	return &{{.TailRef}}
}

// TruncateHead splits t into its first element and the tuple of the remaining elements.
func (t {{.Recv}}) TruncateHead() ({{.HeadType}}, {{.RestHead}}) {
	return {{.HeadRef}}, {{.NewRestHead}}
}

// TruncateTail splits t into the tuple of its leading elements and its last element.
func (t {{.Recv}}) TruncateTail() ({{.RestTail}}, {{.TailType}}) {
	return {{.NewRestTail}}, {{.TailRef}}
}
`))

var growBlock = template.Must(template.New("grow").Parse(`// Append{{.N}} returns the tuple holding the elements of t followed by v.
func Append{{.N}}{{.GrowDecl}}(t {{.Recv}}, v {{.Fresh}}) {{.AppendRet}} {
	return {{.AppendNew}}
}

// Prepend{{.N}} returns the tuple holding v followed by the elements of t.
func Prepend{{.N}}{{.GrowDecl}}(t {{.Recv}}, v {{.Fresh}}) {{.PrependRet}} {
	return {{.PrependNew}}
}
`))

// emitTuple renders the tuple types with their whole-tuple operations:
// MaxArity, T0..TN, NewTN, Len, Slice and String.
func emitTuple(cfg Config) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(generatedHeader)
	buf.WriteByte('\n')
	fmt.Fprintf(&buf, "// MaxArity is the largest arity for which a tuple type is defined.\nconst MaxArity = %d\n", cfg.MaxArity)
	for n := 0; n <= cfg.MaxArity; n++ {
		buf.WriteByte('\n')
		if err := tupleBlock.Execute(&buf, makeArity(n)); err != nil {
			return nil, errors.Wrapf(err, "failed to render arity %d", n)
		}
	}
	return buf.Bytes(), nil
}

// emitNonEmpty renders the operations that exist only above arity 0:
// Head, HeadPtr, Tail, TailPtr, TruncateHead and TruncateTail. T0 gets
// no block, which is what makes misuse a missing-method compile error.
func emitNonEmpty(cfg Config) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(generatedHeader)
	for n := 1; n <= cfg.MaxArity; n++ {
		buf.WriteByte('\n')
		if err := nonEmptyBlock.Execute(&buf, makeNonEmpty(n)); err != nil {
			return nil, errors.Wrapf(err, "failed to render arity %d", n)
		}
	}
	return buf.Bytes(), nil
}

// emitGrow renders AppendN and PrependN for every arity below the
// ceiling. The ceiling arity gets no pair, so growth past it is an
// undefined-identifier compile error.
func emitGrow(cfg Config) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(generatedHeader)
	for n := 0; n < cfg.MaxArity; n++ {
		buf.WriteByte('\n')
		if err := growBlock.Execute(&buf, makeGrow(n)); err != nil {
			return nil, errors.Wrapf(err, "failed to render arity %d", n)
		}
	}
	return buf.Bytes(), nil
}
