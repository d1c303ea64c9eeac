package project

import "github.com/phravins/kivagen/internal/prompt"

// KeyAuthor is the context key holding the manifest author.
const KeyAuthor = "author"

// Context is the immutable substitution record shared by every template file.
type Context struct {
	values map[string]string
}

// NewContext builds the context from the collected answers and author.
func NewContext(answers prompt.Answers, author string) Context {
	values := answers.Values()
	values[KeyAuthor] = author
	return Context{values: values}
}

// Get returns the value for key and whether it is present.
func (c Context) Get(key string) (string, bool) {
	v, ok := c.values[key]
	return v, ok
}

// Values returns a fresh copy of the record in the shape the template engine
// consumes.
func (c Context) Values() map[string]interface{} {
	out := make(map[string]interface{}, len(c.values))
	for k, v := range c.values {
		out[k] = v
	}
	return out
}
