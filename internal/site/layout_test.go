package site

import (
	"testing"

	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/blogbuilder/internal/config"
)

func TestLayoutClassify(t *testing.T) {
	layout := LayoutFromConfig(config.Default())

	tests := []struct {
		name     string
		expected entryKind
	}{
		{"post.md", kindDocument},
		{".md", kindDocument},
		{"template.html", kindReserved},
		{"blog.html", kindReserved},
		{"blogs.html", kindPassthrough},
		{"style.css", kindPassthrough},
		{"README.MD", kindPassthrough},
		{"notes.md.bak", kindPassthrough},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, layout.classify(tt.name))
		})
	}
}

func TestLayoutPageName(t *testing.T) {
	layout := LayoutFromConfig(config.Default())
	require.Equal(t, "post.html", layout.pageName("post.md"))
	require.Equal(t, "a.md.html", layout.pageName("a.md.md"))
}

func TestLayoutMarksPosts(t *testing.T) {
	layout := LayoutFromConfig(config.Default())
	require.True(t, layout.marksPosts("blogs"))
	require.False(t, layout.marksPosts("blog"))
	require.False(t, layout.marksPosts("Blogs"))
}

func TestWorkListIsLIFO(t *testing.T) {
	var w workList
	_, ok := w.pop()
	require.False(t, ok)

	w.push(traversalTask{src: "a"})
	w.push(traversalTask{src: "b"})
	require.Equal(t, 2, w.len())

	got, ok := w.pop()
	require.True(t, ok)
	require.Equal(t, "b", got.src)
	got, _ = w.pop()
	require.Equal(t, "a", got.src)
	require.Equal(t, 0, w.len())
}

func TestTraversalTaskChildInheritsPosts(t *testing.T) {
	root := traversalTask{src: "s", dst: "d"}

	notPosts := root.child("s/pages", "d/pages", false)
	require.False(t, notPosts.inPosts)

	posts := root.child("s/blogs", "d/blogs", true)
	require.True(t, posts.inPosts)

	nested := posts.child("s/blogs/2024", "d/blogs/2024", false)
	require.True(t, nested.inPosts, "posts flag never reverts for descendants")
}
