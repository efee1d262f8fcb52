// Package ident содержит помощники для идентификаторов записей.
package ident

// ShortLen — длина короткого идентификатора.
const ShortLen = 8

// Short оставляет последние восемь символов UUID: начало UUIDv7 занято временем
// и совпадает у соседних записей.
func Short(id string) string {
	if len(id) > ShortLen {
		return id[len(id)-ShortLen:]
	}
	return id
}
