package site

// traversalTask is one pending directory: the source directory, its mirror in
// the destination tree and whether it lies inside the posts subtree.
type traversalTask struct {
	src     string
	dst     string
	inPosts bool
}

// child returns the task for a subdirectory. Once inPosts is true it stays
// true for every descendant.
func (t traversalTask) child(src, dst string, marksPosts bool) traversalTask {
	return traversalTask{src: src, dst: dst, inPosts: t.inPosts || marksPosts}
}

// workList is a LIFO stack of pending tasks.
type workList struct {
	tasks []traversalTask
}

func (w *workList) push(t traversalTask) {
	w.tasks = append(w.tasks, t)
}

func (w *workList) pop() (traversalTask, bool) {
	if len(w.tasks) == 0 {
		return traversalTask{}, false
	}
	last := len(w.tasks) - 1
	t := w.tasks[last]
	w.tasks = w.tasks[:last]
	return t, true
}

func (w *workList) len() int {
	return len(w.tasks)
}
