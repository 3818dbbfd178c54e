/*
Package morse translates between text and International Morse code.

A Table maps characters to tone patterns and back. An Encoder turns text
into a Sequence of Dot, Dash, LetterGap and WordGap symbols; a Decoder turns
a Sequence back into text. ParseRaw reads Morse the way people type it, with
one space between letters and three between words, and Render produces that
same notation.

Encoding drops characters the table does not know. Decoding keeps unknown
tone groups visible as a placeholder. Both report what they dropped or
replaced through a Reporter.
*/
package morse
