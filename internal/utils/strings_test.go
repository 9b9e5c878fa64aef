package utils_test

import (
	"testing"

	"github.com/velikanov/segselect/internal/constants"
	"github.com/velikanov/segselect/internal/utils"
)

const (
	emptyStringValue      = constants.EmptyString
	whitespaceStringValue = " \t\n"
	wordStringValue       = "hello"
	spacedWordStringValue = "  hello  "
)

type isBlankTestDefinition struct {
	testName      string
	inputValue    string
	expectedValue bool
}

// TestIsBlank_IdentifiesBlankStrings verifies that IsBlank correctly identifies blank strings.
func TestIsBlank_IdentifiesBlankStrings(testingInstance *testing.T) {
	testCases := []isBlankTestDefinition{
		{testName: "empty string", inputValue: emptyStringValue, expectedValue: true},
		{testName: "whitespace string", inputValue: whitespaceStringValue, expectedValue: true},
		{testName: "word string", inputValue: wordStringValue, expectedValue: false},
		{testName: "spaced word string", inputValue: spacedWordStringValue, expectedValue: false},
	}
	for _, currentTestCase := range testCases {
		testingInstance.Run(currentTestCase.testName, func(nestedTestingInstance *testing.T) {
			actualBlank := utils.IsBlank(currentTestCase.inputValue)
			if actualBlank != currentTestCase.expectedValue {
				nestedTestingInstance.Fatalf("blank=%v expected=%v", actualBlank, currentTestCase.expectedValue)
			}
		})
	}
}
