package scicalc

import (
	"strconv"
	"strings"
)

// Key is a key on the calculator's keypad.
type Key int8

const (
	KeyNone Key = iota

	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	KeyPoint

	KeyAdd
	KeySub
	KeyMul
	KeyDiv
	KeyPow
	KeyMod

	KeyOpen
	KeyClose
	KeySin
	KeyCos
	KeyTan
	KeyAsin
	KeyAcos
	KeyAtan
	KeyLog
	KeyLn
	KeySqrt
	KeyExp
	KeyAbs
	KeyFact
	KeyPi
	KeyE

	KeyEquals
	KeyAllClear
	KeyBackspace
	KeyDegrees
	KeyRadians
	KeyToggleMode

	keyCount
)

type keyClass int8

const (
	classNone keyClass = iota
	// classDigit keys start a new expression after a result.
	classDigit
	// classOperator keys continue from the last result.
	classOperator
	// classOperand keys start a new expression after a result, but are not
	// digits.
	classOperand
	// classControl keys act on the calculator instead of the expression.
	classControl
)

type keyinfo struct {
	// label is the text on the key.
	label string
	// input is the expression text the key enters.
	input string
	// display is the text the key shows on the display.
	display string
	class   keyClass
}

var keys = [keyCount]keyinfo{
	Key0:     {"0", "0", "0", classDigit},
	Key1:     {"1", "1", "1", classDigit},
	Key2:     {"2", "2", "2", classDigit},
	Key3:     {"3", "3", "3", classDigit},
	Key4:     {"4", "4", "4", classDigit},
	Key5:     {"5", "5", "5", classDigit},
	Key6:     {"6", "6", "6", classDigit},
	Key7:     {"7", "7", "7", classDigit},
	Key8:     {"8", "8", "8", classDigit},
	Key9:     {"9", "9", "9", classDigit},
	KeyPoint: {".", ".", ".", classDigit},

	KeyAdd: {"+", "+", "+", classOperator},
	KeySub: {"−", "-", "−", classOperator},
	KeyMul: {"×", "*", "×", classOperator},
	KeyDiv: {"÷", "/", "÷", classOperator},
	KeyPow: {"^", "^", "^", classOperator},
	KeyMod: {"%", "%", "%", classOperator},

	KeyOpen:  {"(", "(", "(", classOperand},
	KeyClose: {")", ")", ")", classOperand},
	KeySin:   {"sin", "sin(", "sin(", classOperand},
	KeyCos:   {"cos", "cos(", "cos(", classOperand},
	KeyTan:   {"tan", "tan(", "tan(", classOperand},
	KeyAsin:  {"asin", "asin(", "asin(", classOperand},
	KeyAcos:  {"acos", "acos(", "acos(", classOperand},
	KeyAtan:  {"atan", "atan(", "atan(", classOperand},
	KeyLog:   {"log", "log(", "log(", classOperand},
	KeyLn:    {"ln", "ln(", "ln(", classOperand},
	KeySqrt:  {"√", "sqrt(", "√(", classOperand},
	KeyExp:   {"exp", "exp(", "exp(", classOperand},
	KeyAbs:   {"|x|", "abs(", "abs(", classOperand},
	KeyFact:  {"x!", "fact(", "fact(", classOperand},
	KeyPi:    {"π", "pi", "π", classOperand},
	KeyE:     {"e", "e", "e", classOperand},

	KeyEquals:     {"=", "", "", classControl},
	KeyAllClear:   {"AC", "", "", classControl},
	KeyBackspace:  {"⌫", "", "", classControl},
	KeyDegrees:    {"DEG", "", "", classControl},
	KeyRadians:    {"RAD", "", "", classControl},
	KeyToggleMode: {"DRG", "", "", classControl},
}

// aliases are alternative labels accepted by ParseKey, mostly spellings that
// are easy to type on a keyboard.
var aliases = map[string]Key{
	"-":         KeySub,
	"*":         KeyMul,
	"x":         KeyMul,
	"/":         KeyDiv,
	"sqrt":      KeySqrt,
	"abs":       KeyAbs,
	"fact":      KeyFact,
	"!":         KeyFact,
	"pi":        KeyPi,
	"ac":        KeyAllClear,
	"bs":        KeyBackspace,
	"backspace": KeyBackspace,
	"deg":       KeyDegrees,
	"rad":       KeyRadians,
	"drg":       KeyToggleMode,
}

func (k Key) String() string {
	if k <= KeyNone || k >= keyCount {
		return "Key(" + strconv.Itoa(int(k)) + ")"
	}
	return keys[k].label
}

func (k Key) info() keyinfo {
	if k <= KeyNone || k >= keyCount {
		return keyinfo{}
	}
	return keys[k]
}

// UnknownKeyError is an error indicating a key label that names no key.
type UnknownKeyError struct {
	// Label is the unrecognized label.
	Label string
}

func (err *UnknownKeyError) Error() string {
	return "unknown key " + strconv.Quote(err.Label)
}

// ParseKey finds the key with the given label.
func ParseKey(label string) (Key, error) {
	for k := Key0; k < keyCount; k++ {
		if keys[k].label == label {
			return k, nil
		}
	}
	if k, ok := aliases[label]; ok {
		return k, nil
	}
	return KeyNone, &UnknownKeyError{Label: label}
}

// ParseKeys parses a whitespace-separated list of key labels. A field of
// several digits or points, like "3.14", is a key press for each rune.
func ParseKeys(s string) ([]Key, error) {
	var r []Key
	for _, f := range strings.Fields(s) {
		if k, err := ParseKey(f); err == nil {
			r = append(r, k)
			continue
		}
		if !isNumeral(f) {
			return nil, &UnknownKeyError{Label: f}
		}
		for _, c := range f {
			k, _ := ParseKey(string(c))
			r = append(r, k)
		}
	}
	return r, nil
}

func isNumeral(s string) bool {
	for _, c := range s {
		if c != '.' && (c < '0' || '9' < c) {
			return false
		}
	}
	return s != ""
}
