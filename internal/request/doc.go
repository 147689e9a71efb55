// Package request turns one line of user input into a validated Request.
//
// A line has the shape `<start> [<count> [<±PROPERTY>...]]`. Parsing builds
// the complete include and exclude sets first and only then checks them for
// contradictions, so the reported conflict never depends on how far the
// tokenizer got.
package request
