package models

// IndexType classifies a directory's role in the vault hierarchy.
type IndexType string

const (
	TypeMain        IndexType = "main"
	TypeProgram     IndexType = "program"
	TypeCourse      IndexType = "course"
	TypeClass       IndexType = "class"
	TypeModule      IndexType = "module"
	TypeLesson      IndexType = "lesson"
	TypeLiveSession IndexType = "live-session"
	TypeCaseStudies IndexType = "case-studies"
	TypeReadings    IndexType = "readings"
	TypeResources   IndexType = "resources"
)

// AllIndexTypes lists every valid index type, in hierarchy order followed by
// the name-triggered special types.
var AllIndexTypes = []IndexType{
	TypeMain,
	TypeProgram,
	TypeCourse,
	TypeClass,
	TypeModule,
	TypeLesson,
	TypeLiveSession,
	TypeCaseStudies,
	TypeReadings,
	TypeResources,
}

// Valid reports whether t is a known index type.
func (t IndexType) Valid() bool {
	for _, known := range AllIndexTypes {
		if t == known {
			return true
		}
	}
	return false
}

// ChildHeading returns the section heading used for a generic subfolder
// listing beneath a directory of this type.
func (t IndexType) ChildHeading() string {
	switch t {
	case TypeMain:
		return "Programs"
	case TypeProgram:
		return "Courses"
	case TypeCourse:
		return "Classes"
	case TypeClass:
		return "Modules"
	case TypeModule:
		return "Lessons"
	default:
		return "Contents"
	}
}

// LevelTag returns the hierarchy tag for this type, or "" when the type has
// no level tag.
func (t IndexType) LevelTag() string {
	switch t {
	case TypeCourse:
		return "#course"
	case TypeClass:
		return "#class"
	case TypeModule:
		return "#module"
	case TypeLesson:
		return "#lesson"
	default:
		return ""
	}
}

// Context carries the hierarchical placement of a directory. It is derived
// from ancestor path segments on every run and never persisted.
type Context struct {
	Program string `json:"program,omitempty"`
	Course  string `json:"course,omitempty"`
}

// LockState is a document's overwrite protection flag. Only a user sets a
// document Readonly; the engine reads the flag but never changes it.
type LockState string

const (
	LockWritable LockState = "writable"
	LockReadonly LockState = "readonly"
)
