package provision

import (
	"path/filepath"

	"hebtex-setup/internal/state"
)

// documentHeader is the shared XeLaTeX preamble both templates start with:
// document class, font declarations, and the polyglossia setup that makes
// Hebrew the main language with English as the secondary one. Templates
// are produced by plain concatenation of this constant with a body; there
// is deliberately no templating language involved.
const documentHeader = `% !TeX program = xelatex
% !TeX encoding = UTF-8
\documentclass[12pt,a4paper]{article}
\usepackage{fontspec}
\usepackage{polyglossia}
\setmainlanguage{hebrew}
\setotherlanguage{english}
\newfontfamily\hebrewfont[Script=Hebrew]{David CLM}
\newfontfamily\hebrewfonttt[Script=Hebrew]{Miriam Mono CLM}
\newfontfamily\englishfont{Latin Modern Roman}
\usepackage{geometry}
\geometry{margin=2.5cm}
`

// emptyDocumentBody completes the minimal template: an empty document the
// user fills in from scratch.
const emptyDocumentBody = `\begin{document}

\end{document}
`

// articleDocumentBody completes the article template: title, author, and a
// short Hebrew opening paragraph.
const articleDocumentBody = `\title{כותרת המאמר}
\author{שם המחבר}
\date{\today}
\begin{document}
\maketitle

שלום! זהו מסמך לדוגמה בעברית. החליפו את הטקסט הזה בתוכן שלכם.

\section{פרק ראשון}

\end{document}
`

const (
	emptyTemplateFile   = "template_hebrew_empty.tex"
	articleTemplateFile = "template_hebrew_article.tex"
)

// renderDocument assembles a complete document from the shared header and
// a body.
func renderDocument(body string) string {
	return documentHeader + body
}

// templateFiles returns the two rendered template documents keyed by their
// final path under the editor's templates directory.
func (p *Provisioner) templateFiles() map[string]string {
	dir := filepath.Join(p.cfg.AppSupportDir, "templates")
	return map[string]string{
		filepath.Join(dir, emptyTemplateFile):   renderDocument(emptyDocumentBody),
		filepath.Join(dir, articleTemplateFile): renderDocument(articleDocumentBody),
	}
}

// templatesCurrent reports whether both template documents already exist
// with the canonical rendered content.
func (p *Provisioner) templatesCurrent() bool {
	for path, content := range p.templateFiles() {
		if !fileHasContent(path, content) {
			return false
		}
	}
	return true
}

// writeTemplates materializes the template documents, backing up divergent
// pre-existing versions the same way configuration files are handled.
func (p *Provisioner) writeTemplates() error {
	for path, content := range p.templateFiles() {
		if fileHasContent(path, content) {
			continue
		}
		backup, err := writeFileWithBackup(path, content)
		if err != nil {
			return err
		}
		p.st.Configs[filepath.Base(path)] = state.ConfigFileState{Path: path, Backup: backup}
	}
	return nil
}
