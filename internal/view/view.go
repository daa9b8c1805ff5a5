// Package view holds the embedded HTML pages.
package view

import (
	"embed"
	"html/template"
)

const (
	Login        = "login.html"
	Dashboard    = "index.html"
	Patients     = "patients.html"
	Doctors      = "doctors.html"
	Appointments = "appointments.html"
	Staff        = "staff.html"
	Error        = "error.html"
)

//go:embed templates/*.html
var files embed.FS

// Templates parses every page. Each page is addressable by its file name.
func Templates() (*template.Template, error) {
	return template.New("").ParseFS(files, "templates/*.html")
}
