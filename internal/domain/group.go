package domain

// Group is one parsed vocabulary entry: an anchor word with its synonyms,
// antonyms, semicolon-delimited meanings, root explanations, derived words
// and usage sentences. A Group is fully populated before it is published
// to an index and is never mutated afterwards.
type Group struct {
	Anchor   string
	Synonyms []string
	Antonyms []string
	Meanings []string
	Roots    []RootRef
	Derived  []DerivedWord
	Contexts []string
}

// RootRef explains one morphological root attached to a group's anchor.
type RootRef struct {
	Root    string
	Meaning string
}

// DerivedWord is a word formed from Root. Root is empty when the source
// block carried no root at all.
type DerivedWord struct {
	Word string
	Root string
}
