package html

// ChromeClass is a typed identifier for the semantic chrome classes the HTML
// emitter puts on structural elements. Field-level classes come from the
// render instructions, not from here.
type ChromeClass string

const (
	ClassForm    ChromeClass = "formstate-form"
	ClassErrors  ChromeClass = "formstate-errors"
	ClassMessage ChromeClass = "formstate-message"
)

// Default*Class values apply when the corresponding option is not set.
const (
	DefaultFormClass    = string(ClassForm)
	DefaultErrorsClass  = string(ClassErrors)
	DefaultMessageClass = string(ClassMessage)
)
