package internal

import "math"

// Demos lists every demo in the order Run executes them.
var Demos = []Demo{
	{Name: "variable", Summary: "declare first, assign later", Run: demoVariable},
	{Name: "shadowing", Summary: "a new binding hides the old one", Run: demoShadowing},
	{Name: "mut", Summary: "reassign the same binding", Run: demoMut},
	{Name: "const", Summary: "typed package constant", Run: demoConst},
	{Name: "8", Summary: "int8 and uint8 ranges", Run: demo8},
	{Name: "i32", Summary: "int32 range", Run: demoI32},
	{Name: "types", Summary: "explicitly typed variables", Run: demoTypes},
	{Name: "suffix-types", Summary: "literals with a fixed type", Run: demoSuffixTypes},
	{Name: "number-systems", Summary: "literal bases (empty)", Run: demoNumberSystems},
}

// FindDemo looks a demo up by name.
func FindDemo(name string) (Demo, bool) {
	for _, d := range Demos {
		if d.Name == name {
			return d, true
		}
	}
	return Demo{}, false
}

func demoVariable(p *printer) {
	var a int

	a = 12
	p.printf("variable-1: a = %v\n", a)
	p.blank()
}

func demoShadowing(p *printer) {
	var a int

	a = 12
	p.printf("shadowing-1: a = %v\n", a)

	{
		// Go refuses to redeclare a name in the same scope, so the new
		// binding lives in a nested block. The outer a is still 12.
		a := 33
		p.printf("shadowing-2: a = %v\n", a)
	}
	p.blank()
}

func demoMut(p *printer) {
	var a int

	a = 12
	p.printf("mut-1: a = %v\n", a)

	a = 33
	p.printf("mut-2: a = %v\n", a)
	p.blank()
}

func demoConst(p *printer) {
	p.printf("const-1: PI = %v\n", PI)
	p.blank()
}

func demo8(p *printer) {
	p.printf("8-1 i8: from %v to %v\n", int8(math.MinInt8), int8(math.MaxInt8))
	p.printf("8-2 u8: from %v to %v\n", uint8(0), uint8(math.MaxUint8))
	p.blank()
}

func demoI32(p *printer) {
	p.printf("i32-1: from %v to %v\n", int32(math.MinInt32), int32(math.MaxInt32))
	p.blank()
}

func demoTypes(p *printer) {
	var a int8 = 20
	var b bool = false
	var c rune = 'a'
	var d float32 = 4.4321

	p.printf("types-1: i8:   a = %v\n", a)
	p.printf("types-2: bool: b = %v\n", b)
	p.printf("types-3: char: c = %c\n", c)
	p.printf("types-4: f32:  d = %v\n", d)
	p.blank()
}

// Go has no literal suffixes; converting the untyped constant pins the type.
func demoSuffixTypes(p *printer) {
	a := float32(3.0)
	b := int8(42)

	p.printf("suffix-types-1: f32: a = %v\n", a)
	p.printf("suffix-types-2: i8:  b = %v\n", b)
}

// Hex, octal and binary literals are not covered yet; the demo prints nothing.
func demoNumberSystems(p *printer) {
}
