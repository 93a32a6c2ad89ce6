// Package html provides a Normaliser for HTML syllabi, such as course pages
// saved from a university portal. Text is recovered with a streaming
// tokenizer; block elements become line breaks and table cells are joined
// with commas so a row of topics reads like a topic list.
package html
