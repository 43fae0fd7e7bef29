package bitstream

import (
	"fmt"
	"reflect"
)

// Built-in type tokens, used as identifiers with WriteAs and Read.
// These dispatch directly to the fixed-width engine, bypassing the
// registry.
var (
	Bool    = reflect.TypeOf(false)
	Uint8   = reflect.TypeOf(uint8(0))
	Uint16  = reflect.TypeOf(uint16(0))
	Uint32  = reflect.TypeOf(uint32(0))
	Uint64  = reflect.TypeOf(uint64(0))
	Int8    = reflect.TypeOf(int8(0))
	Int16   = reflect.TypeOf(int16(0))
	Int32   = reflect.TypeOf(int32(0))
	Int64   = reflect.TypeOf(int64(0))
	Float64 = reflect.TypeOf(float64(0))
	Bytes   = reflect.TypeOf([]byte(nil))
)

// ReaderFunc decodes values from a stream. count is the number of items
// requested, or -1 when unspecified; what an unspecified count means is
// codec-defined.
type ReaderFunc func(s *Stream, count int) (any, error)

// WriterFunc encodes v into a stream.
type WriterFunc func(s *Stream, v any) error

// ReaderFactory produces a concrete reader from a factory-identifier
// instance (for example Uint{Bits: 5}).
type ReaderFactory func(param any) (ReaderFunc, error)

// WriterFactory produces a concrete writer from a factory-identifier
// instance.
type WriterFactory func(param any) (WriterFunc, error)

type codecEntry struct {
	reader ReaderFunc
	writer WriterFunc
}

type factoryEntry struct {
	reader ReaderFactory
	writer WriterFactory
}

// Registry maps type identifiers to codecs. Identifiers come in two
// levels: plain types, registered with Register, and factory classes,
// registered with RegisterFactory, whose instances act as parameterized
// identifiers. A Registry is not safe for concurrent mutation.
type Registry struct {
	types     map[reflect.Type]codecEntry
	factories map[reflect.Type]factoryEntry
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		types:     make(map[reflect.Type]codecEntry),
		factories: make(map[reflect.Type]factoryEntry),
	}
}

// DefaultRegistry is the process-wide registry used by New. Entries
// persist for the lifetime of the process.
var DefaultRegistry = NewRegistry()

// Register inserts or updates the codec entry for t. A nil reader or
// writer leaves the existing function for that side unchanged; the two
// sides are registered independently and the last registration per side
// wins.
func (r *Registry) Register(t reflect.Type, reader ReaderFunc, writer WriterFunc) {
	e := r.types[t]
	if reader != nil {
		e.reader = reader
	}
	if writer != nil {
		e.writer = writer
	}
	r.types[t] = e
}

// RegisterFactory inserts or updates the factory entry for class.
// Instances of class then act as identifiers: dispatch invokes the
// factory with the instance to obtain a concrete codec. A nil side is
// left unchanged.
func (r *Registry) RegisterFactory(class reflect.Type, reader ReaderFactory, writer WriterFactory) {
	e := r.factories[class]
	if reader != nil {
		e.reader = reader
	}
	if writer != nil {
		e.writer = writer
	}
	r.factories[class] = e
}

func (r *Registry) writerFor(identifier any) (WriterFunc, error) {
	if t, ok := identifier.(reflect.Type); ok {
		if e, ok := r.types[t]; ok && e.writer != nil {
			return e.writer, nil
		}
		return nil, &UnsupportedTypeError{Identifier: t.String()}
	}
	class := reflect.TypeOf(identifier)
	if e, ok := r.factories[class]; ok && e.writer != nil {
		return e.writer(identifier)
	}
	return nil, &UnsupportedTypeError{Identifier: fmt.Sprintf("%+v", identifier)}
}

func (r *Registry) readerFor(identifier any) (ReaderFunc, error) {
	if t, ok := identifier.(reflect.Type); ok {
		if e, ok := r.types[t]; ok && e.reader != nil {
			return e.reader, nil
		}
		return nil, &UnsupportedTypeError{Identifier: t.String()}
	}
	class := reflect.TypeOf(identifier)
	if e, ok := r.factories[class]; ok && e.reader != nil {
		return e.reader(identifier)
	}
	return nil, &UnsupportedTypeError{Identifier: fmt.Sprintf("%+v", identifier)}
}
