package frontmatter

import (
	"reflect"
	"testing"

	"github.com/danielshue/notebook-automation/pkg/models"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		wantKeys []string
		wantBody string
		wantErr  bool
	}{
		{
			name: "valid block",
			content: `---
title: Operations Management
template-type: course-index
auto-generated-state: writable
tags: [index, course]
---

# Operations Management
`,
			wantKeys: []string{"title", "template-type", "auto-generated-state", "tags"},
			wantBody: "\n# Operations Management\n",
		},
		{
			name:     "no block",
			content:  "# Just a title\n\nSome content.",
			wantKeys: nil,
			wantBody: "# Just a title\n\nSome content.",
		},
		{
			name: "malformed yaml",
			content: `---
title: [invalid
---

Body`,
			wantErr: true,
		},
		{
			name:     "unterminated block",
			content:  "---\ntitle: Oops\n\nBody",
			wantErr:  true,
			wantBody: "---\ntitle: Oops\n\nBody",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			block, body, err := Parse(tt.content)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			var gotKeys []string
			if block != nil {
				gotKeys = block.Keys()
			}
			if !reflect.DeepEqual(gotKeys, tt.wantKeys) {
				t.Errorf("Parse() keys = %v, want %v", gotKeys, tt.wantKeys)
			}
			if body != tt.wantBody {
				t.Errorf("Parse() body = %q, want %q", body, tt.wantBody)
			}
		})
	}
}

func TestBuildRoundTrip(t *testing.T) {
	b := NewBlock()
	b.Set(KeyTitle, "Finance Fundamentals")
	b.Set(KeyType, "course-index")
	b.Set(KeyAutoState, "writable")
	b.SetList(KeyTags, []string{"index", "course"})
	b.Set(KeyUp, "../Programs.md")

	content := BuildContent(b, "# Finance Fundamentals\n")

	parsed, body, err := Parse(content)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if body != "\n# Finance Fundamentals\n" {
		t.Errorf("body = %q", body)
	}
	if !reflect.DeepEqual(parsed.Keys(), b.Keys()) {
		t.Errorf("keys = %v, want %v", parsed.Keys(), b.Keys())
	}
	if parsed.Get(KeyTitle) != "Finance Fundamentals" {
		t.Errorf("title = %q", parsed.Get(KeyTitle))
	}
	if !reflect.DeepEqual(parsed.GetList(KeyTags), []string{"index", "course"}) {
		t.Errorf("tags = %v", parsed.GetList(KeyTags))
	}

	// Building twice must give identical bytes.
	if again := BuildContent(parsed, body); again != content {
		t.Errorf("rebuild not byte-identical:\n%q\n%q", again, content)
	}
}

func TestLock(t *testing.T) {
	tests := []struct {
		name  string
		state string
		want  models.LockState
	}{
		{"readonly", "readonly", models.LockReadonly},
		{"readonly mixed case", "Readonly", models.LockReadonly},
		{"writable", "writable", models.LockWritable},
		{"absent means writable", "", models.LockWritable},
		{"unknown value means writable", "frozen", models.LockWritable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBlock()
			if tt.state != "" {
				b.Set(KeyAutoState, tt.state)
			}
			if got := b.Lock(); got != tt.want {
				t.Errorf("Lock() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCloneDoesNotShare(t *testing.T) {
	b := NewBlock()
	b.Set(KeyTitle, "original")
	b.SetList(KeyTags, []string{"one"})

	c := b.Clone()
	c.Set(KeyTitle, "changed")
	c.GetList(KeyTags)[0] = "two"

	if b.Get(KeyTitle) != "original" {
		t.Errorf("clone mutated original title")
	}
	if b.GetList(KeyTags)[0] != "one" {
		t.Errorf("clone shares tag slice with original")
	}
}

func TestMergeTags(t *testing.T) {
	got := MergeTags([]string{"a", "b"}, []string{"b", "", "c"})
	want := []string{"a", "b", "c"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("MergeTags() = %v, want %v", got, want)
	}
}
