// Package optional modela un valor presente o ausente de forma explícita,
// para que el llamador no confunda "no encontrado" con "encontrado vacío".
package optional

// Optional contiene un valor de tipo T o nada.
type Optional[T any] struct {
	value T
	ok    bool
}

// Of devuelve un Optional presente con v.
func Of[T any](v T) Optional[T] {
	return Optional[T]{value: v, ok: true}
}

// Empty devuelve un Optional ausente.
func Empty[T any]() Optional[T] {
	return Optional[T]{}
}

// FromPair construye un Optional a partir del par (valor, ok).
func FromPair[T any](v T, ok bool) Optional[T] {
	if !ok {
		return Empty[T]()
	}
	return Of(v)
}

// IsPresent indica si hay valor.
func (o Optional[T]) IsPresent() bool { return o.ok }

// Get devuelve el valor y si está presente.
func (o Optional[T]) Get() (T, bool) { return o.value, o.ok }

// OrElse devuelve el valor o def si está ausente.
func (o Optional[T]) OrElse(def T) T {
	if !o.ok {
		return def
	}
	return o.value
}

// Map aplica fn al valor presente; un Optional ausente queda ausente.
func Map[T, U any](o Optional[T], fn func(T) U) Optional[U] {
	if !o.ok {
		return Empty[U]()
	}
	return Of(fn(o.value))
}
