package app

import "go.trai.ch/docsync/internal/core/ports"

// Events fans the engine's notifications out to registered listeners. It
// implements ports.Notifier. Listeners are invoked synchronously on the
// owning goroutine, in registration order; registration itself must also
// happen on the owning goroutine, typically during setup.
type Events struct {
	filesChangedExternally []func(paths []string)
	filesChangedInternally []func(paths []string)
	documentRenamed        []func(doc ports.Document, from, to string)
	allDocumentsRenamed    []func(from, to string)
	documentsClosed        []func(docs []ports.Document)
	projectsDirChanged     []func(dir string)
}

var _ ports.Notifier = (*Events)(nil)

// OnFilesChangedExternally registers a listener for the per-pass batch of
// externally changed paths.
func (e *Events) OnFilesChangedExternally(fn func(paths []string)) {
	e.filesChangedExternally = append(e.filesChangedExternally, fn)
}

// OnFilesChangedInternally registers a listener for application-made changes
// announced through NotifyFilesChangedInternally.
func (e *Events) OnFilesChangedInternally(fn func(paths []string)) {
	e.filesChangedInternally = append(e.filesChangedInternally, fn)
}

// OnDocumentRenamed registers a listener invoked once per document affected
// by a rename.
func (e *Events) OnDocumentRenamed(fn func(doc ports.Document, from, to string)) {
	e.documentRenamed = append(e.documentRenamed, fn)
}

// OnAllDocumentsRenamed registers a listener invoked once per rename batch.
func (e *Events) OnAllDocumentsRenamed(fn func(from, to string)) {
	e.allDocumentsRenamed = append(e.allDocumentsRenamed, fn)
}

// OnDocumentsClosed registers a listener for documents closed by the default
// closer. Only fired when no external DocumentCloser is wired.
func (e *Events) OnDocumentsClosed(fn func(docs []ports.Document)) {
	e.documentsClosed = append(e.documentsClosed, fn)
}

// OnProjectsDirectoryChanged registers a listener for projects directory
// updates made through the manager.
func (e *Events) OnProjectsDirectoryChanged(fn func(dir string)) {
	e.projectsDirChanged = append(e.projectsDirChanged, fn)
}

// DocumentsClosed notifies the closed-documents listeners.
func (e *Events) DocumentsClosed(docs []ports.Document) {
	for _, fn := range e.documentsClosed {
		fn(docs)
	}
}

func (e *Events) FilesChangedExternally(paths []string) {
	for _, fn := range e.filesChangedExternally {
		fn(paths)
	}
}

func (e *Events) FilesChangedInternally(paths []string) {
	for _, fn := range e.filesChangedInternally {
		fn(paths)
	}
}

func (e *Events) DocumentRenamed(doc ports.Document, from, to string) {
	for _, fn := range e.documentRenamed {
		fn(doc, from, to)
	}
}

func (e *Events) AllDocumentsRenamed(from, to string) {
	for _, fn := range e.allDocumentsRenamed {
		fn(from, to)
	}
}

func (e *Events) ProjectsDirectoryChanged(dir string) {
	for _, fn := range e.projectsDirChanged {
		fn(dir)
	}
}
