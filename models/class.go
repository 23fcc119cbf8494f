package models

// Class is a type found in the scanned sources together with the
// declarations attached to it, in declaration order.
type Class struct {
	// Name is the type name, qualified by package when known
	// (e.g. "worker.QueueConsumer").
	Name string

	// Source is the file the type was declared in.
	Source string

	Declarations []Declaration
}

// DeclaredClass is a type as read from a source file, before its
// declarations are validated. The registry builds the declarations when the
// class is registered.
type DeclaredClass struct {
	Name     string
	Source   string
	Builders []*DeclarationBuilder
}
