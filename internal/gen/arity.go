package gen

import (
	"fmt"
	"strings"
)

// paramLetters returns n distinct type parameter names: A..Z, then
// AA..AZ. Letters keep the T0..TN type names unshadowed inside method
// signatures, which mention other tuple types.
func paramLetters(n int) []string {
	names := make([]string, n)
	for i := range names {
		name := string(rune('A' + i%26))
		if i >= 26 {
			name = "A" + name
		}
		names[i] = name
	}
	return names
}

// bracket renders a type parameter or argument list, or nothing when
// the list is empty (Go has no empty [] form).
func bracket(names []string) string {
	if len(names) == 0 {
		return ""
	}
	return "[" + strings.Join(names, ", ") + "]"
}

// fieldRefs renders "t.A, t.B, ..." for the given parameter letters.
func fieldRefs(letters []string) string {
	refs := make([]string, len(letters))
	for i, l := range letters {
		refs[i] = "t." + l
	}
	return strings.Join(refs, ", ")
}

// intsUse renders the all-int instantiation "[int, ...]" used by the
// interface conformance declarations.
func intsUse(n int) string {
	ints := make([]string, n)
	for i := range ints {
		ints[i] = "int"
	}
	return bracket(ints)
}

// arityInfo holds the precomputed names and expressions substituted
// into the per-arity templates.
type arityInfo struct {
	N         int
	Type      string // T3
	TypeDoc   string // T3 holds 3 values.
	NewDoc    string // NewT3 returns a tuple of the 3 given values.
	Decl      string // [A, B, C any]
	Use       string // [A, B, C]
	Recv      string // T3[A, B, C]
	Fields    string // indented struct field lines
	Args      string // a A, b B, c C
	Literal   string // T3[A, B, C]{a, b, c}
	SliceExpr string // []any{t.A, t.B, t.C}
	AssertVal string // T3[int, int, int]{}
}

func makeArity(n int) arityInfo {
	info := arityInfo{
		N:    n,
		Type: fmt.Sprintf("T%d", n),
	}
	if n == 0 {
		info.TypeDoc = "T0 is the empty tuple."
		info.NewDoc = "NewT0 returns the empty tuple."
		info.Recv = info.Type
		info.Literal = "T0{}"
		info.SliceExpr = "nil"
		info.AssertVal = "T0{}"
		return info
	}
	letters := paramLetters(n)
	fields := make([]string, n)
	args := make([]string, n)
	argNames := make([]string, n)
	for i, l := range letters {
		fields[i] = "\t" + l + " " + l
		argNames[i] = strings.ToLower(l)
		args[i] = argNames[i] + " " + l
	}
	if n == 1 {
		info.TypeDoc = "T1 holds 1 value."
		info.NewDoc = "NewT1 returns a tuple of the given value."
	} else {
		info.TypeDoc = fmt.Sprintf("%s holds %d values.", info.Type, n)
		info.NewDoc = fmt.Sprintf("New%s returns a tuple of the %d given values.", info.Type, n)
	}
	decl := make([]string, n)
	copy(decl, letters)
	decl[n-1] += " any"
	info.Decl = bracket(decl)
	info.Use = bracket(letters)
	info.Recv = info.Type + info.Use
	info.Fields = strings.Join(fields, "\n")
	info.Args = strings.Join(args, ", ")
	info.Literal = info.Recv + "{" + strings.Join(argNames, ", ") + "}"
	info.SliceExpr = "[]any{" + fieldRefs(letters) + "}"
	info.AssertVal = info.Type + intsUse(n) + "{}"
	return info
}

// nonEmptyInfo extends arityInfo with the head/tail shapes of a tuple
// of at least one element.
type nonEmptyInfo struct {
	arityInfo
	HeadType    string // A
	TailType    string // C
	HeadRef     string // t.A
	TailRef     string // t.C
	RestHead    string // T2[B, C]
	RestTail    string // T2[A, B]
	NewRestHead string // NewT2(t.B, t.C)
	NewRestTail string // NewT2(t.A, t.B)
	Assert      string // NonEmpty[int, int, T2[int, int], T2[int, int]] = T3[int, int, int]{}
}

func makeNonEmpty(n int) nonEmptyInfo {
	info := nonEmptyInfo{arityInfo: makeArity(n)}
	letters := paramLetters(n)
	rest := fmt.Sprintf("T%d", n-1)
	info.HeadType = letters[0]
	info.TailType = letters[n-1]
	info.HeadRef = "t." + letters[0]
	info.TailRef = "t." + letters[n-1]
	info.RestHead = rest + bracket(letters[1:])
	info.RestTail = rest + bracket(letters[:n-1])
	info.NewRestHead = "New" + rest + "(" + fieldRefs(letters[1:]) + ")"
	info.NewRestTail = "New" + rest + "(" + fieldRefs(letters[:n-1]) + ")"
	restInts := rest + intsUse(n-1)
	info.Assert = fmt.Sprintf("NonEmpty[int, int, %s, %s] = %s", restInts, restInts, info.AssertVal)
	return info
}

// growInfo extends arityInfo with the shapes of the tuple one element
// larger.
type growInfo struct {
	arityInfo
	Fresh      string // D
	GrowDecl   string // [A, B, C, D any]
	AppendRet  string // T4[A, B, C, D]
	PrependRet string // T4[D, A, B, C]
	AppendNew  string // NewT4(t.A, t.B, t.C, v)
	PrependNew string // NewT4(v, t.A, t.B, t.C)
}

func makeGrow(n int) growInfo {
	info := growInfo{arityInfo: makeArity(n)}
	grown := paramLetters(n + 1)
	letters := grown[:n]
	next := fmt.Sprintf("T%d", n+1)
	info.Fresh = grown[n]
	decl := make([]string, n+1)
	copy(decl, grown)
	decl[n] += " any"
	info.GrowDecl = bracket(decl)
	info.AppendRet = next + bracket(grown)
	info.PrependRet = next + bracket(append([]string{info.Fresh}, letters...))
	refs := make([]string, 0, n+1)
	for _, l := range letters {
		refs = append(refs, "t."+l)
	}
	info.AppendNew = "New" + next + "(" + strings.Join(append(refs, "v"), ", ") + ")"
	info.PrependNew = "New" + next + "(" + strings.Join(append([]string{"v"}, refs...), ", ") + ")"
	return info
}
