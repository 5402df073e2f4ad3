// Package fuzztests houses Go fuzz harnesses for the scanning pipeline
// (bytes -> normalize -> lexer). They guard against panics and check that
// every successful scan satisfies the token-stream invariants.
//
// Назначение: прогонять произвольные байты через лексер и testkit.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
package fuzztests
