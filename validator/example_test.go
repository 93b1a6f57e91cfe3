package validator_test

import (
	"fmt"

	"github.com/katalvlaran/pathquiz/core"
	"github.com/katalvlaran/pathquiz/validator"
)

// ExampleValidate shows the three typical outcomes.
func ExampleValidate() {
	ref := core.Answer{Distance: 7, Path: []int{0, 1, 2}}

	fmt.Println(validator.Validate(core.Answer{Distance: 7, Path: []int{0, 1, 2}}, ref))
	fmt.Println(validator.Validate(core.Answer{Distance: 10, Path: []int{0, 2}}, ref))
	fmt.Println(validator.Validate(core.Answer{Distance: 7, Path: []int{1, 2}}, ref))
	// Output:
	// PASS
	// FAIL: distance mismatch: candidate=10, reference=7
	// FAIL: endpoint mismatch: candidate path=[1 2], reference path=[0 1 2]
}

// ExampleValidateText validates a free-text answer.
func ExampleValidateText() {
	ref := core.Answer{Distance: 7, Path: []int{0, 1, 2}}
	fmt.Println(validator.ValidateText("Distance: 7, Path: 0->1->2", ref).OK)
	// Output: true
}
