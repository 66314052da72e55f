// Package host connects titles with the editing applications that
// drive them.
//
// Hosts register the title parameters once at setup time through a
// [Registrar], and later supply per frame values through a [Retriever].
// [Snapshot]() turns those values into the persisted parameter record
// that [voxtitle.RenderState]() consumes.
package host
