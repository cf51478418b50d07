package shape_test

import (
	"fmt"

	"honnef.co/go/shape"
)

func ExampleHRule() {
	fmt.Println(shape.HRule(4))
	fmt.Println(shape.VRule(4))
	// Output:
	// Outline((-2, 0), Straight(⟨4, 0⟩))
	// Outline((0, 2), Straight(⟨0, -4⟩))
}

func ExampleRoundedRect() {
	// With a radius of zero, a rounded rectangle is a plain rectangle.
	for el := range shape.RoundedRect(shape.Vec(4, 2), 0).PathElements() {
		fmt.Println(el)
	}
	// Output:
	// MoveTo(2, -1)
	// LineTo(2, 1)
	// LineTo(-2, 1)
	// LineTo(-2, -1)
	// ClosePath
}

func ExampleRegPoly() {
	hex := shape.Hexagon(1)
	fmt.Println(len(hex.Segments), hex.Closed)
	fmt.Printf("%.3f\n", hex.SignedArea())
	// Output:
	// 6 true
	// 2.598
}

func ExampleClamp() {
	fmt.Println(shape.Clamp(5, 0, 3))
	fmt.Println(shape.Clamp(-1.5, 0, 1))
	fmt.Println(shape.Clamp("m", "a", "k"))
	// Output:
	// 3
	// 0
	// k
}
