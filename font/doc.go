// The font subpackage parses fonts and keeps them in a [Library]
// that resolves the loose font names typed by users or sent by video
// hosts ("Helvetica", "GoRegular", "go mono") into parsed fonts.
//
// A [Library] is populated once and then only read, so a single one
// can be shared by any number of concurrent render calls.
package font
