package vm

import "fmt"

// Class is a runtime class object: a name and a method table mapping method
// names to Closures. Classes carry no field declarations; instances grow
// their field table lazily on first assignment.
type Class struct {
	obj
	Name    *String
	Methods *Table
}

func newClass(name *String) *Class {
	return &Class{Name: name, Methods: NewTable()}
}

func (c *Class) String() string { return c.Name.chars }
func (c *Class) Type() string   { return "class" }

func (c *Class) blacken(gc *gc) {
	gc.markObject(c.Name)
	gc.markTable(c.Methods)
}

// Instance is a runtime instance of a Class: an open field table, separate
// from the class's method table, consulted first on property lookup.
type Instance struct {
	obj
	Class  *Class
	Fields *Table
}

func newInstance(class *Class) *Instance {
	return &Instance{Class: class, Fields: NewTable()}
}

func (i *Instance) String() string { return fmt.Sprintf("%s instance", i.Class.Name.chars) }
func (i *Instance) Type() string   { return "instance" }

func (i *Instance) blacken(gc *gc) {
	gc.markObject(i.Class)
	gc.markTable(i.Fields)
}
