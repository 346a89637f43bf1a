package pipeline

// Method tokens prefix wrapped errors.
const (
	// MethodBuild is the canonical name for Builder.Build.
	MethodBuild = "Build"
)

// DefaultName labels pipeline metrics and logs when WithName is not used.
const DefaultName = "default"

// StageKind classifies a Stage.
type StageKind int

const (
	// KindSimplifier marks a string-to-string stage.
	KindSimplifier StageKind = iota + 1
	// KindTokenizer marks a string-to-tokens stage.
	KindTokenizer
	// KindTerminal marks the final scoring stage.
	KindTerminal
)

func (k StageKind) String() string {
	switch k {
	case KindSimplifier:
		return "simplifier"
	case KindTokenizer:
		return "tokenizer"
	case KindTerminal:
		return "terminal"
	}
	return "unknown"
}

// InputKind is the shape of input a Terminal consumes.
type InputKind int

const (
	// InputString consumes the simplified strings.
	InputString InputKind = iota + 1
	// InputList consumes token lists in order.
	InputList
	// InputSet consumes distinct tokens.
	InputSet
	// InputMultiset consumes token counts.
	InputMultiset
)

func (k InputKind) String() string {
	switch k {
	case InputString:
		return "string"
	case InputList:
		return "list"
	case InputSet:
		return "set"
	case InputMultiset:
		return "multiset"
	}
	return "unknown"
}
