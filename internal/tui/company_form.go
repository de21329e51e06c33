// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/workhub-console/internal/service"
	"github.com/MKhiriev/workhub-console/models"
	"github.com/charmbracelet/bubbles/textinput"
)

const maxLogoSize = 5 << 20

const (
	formName = iota
	formAddress
	formLogo
)

// companyFormModel creates a company or, when id is set, edits one. The logo
// field takes a local image path that is uploaded on save.
type companyFormModel struct {
	id           string
	originalLogo string
	removeLogo   bool

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

func newCompanyFormModel(company *models.Company) companyFormModel {
	name := textinput.New()
	name.Placeholder = "company name"
	name.CharLimit = 255
	name.Width = 40
	name.Focus()

	address := textinput.New()
	address.Placeholder = "address"
	address.CharLimit = 500
	address.Width = 40

	logo := textinput.New()
	logo.Placeholder = "path to an image, max 5MB (optional)"
	logo.Width = 40

	m := companyFormModel{inputs: []textinput.Model{name, address, logo}}
	if company != nil {
		m.id = company.ID
		m.originalLogo = company.LogoURL
		m.inputs[formName].SetValue(company.Name)
		m.inputs[formAddress].SetValue(company.Address)
	}
	return m
}

func (m companyFormModel) editing() bool {
	return m.id != ""
}

func (m companyFormModel) focusNext() companyFormModel {
	return m.focusAt((m.focus + 1) % len(m.inputs))
}

func (m companyFormModel) focusPrev() companyFormModel {
	return m.focusAt((m.focus + len(m.inputs) - 1) % len(m.inputs))
}

func (m companyFormModel) focusAt(i int) companyFormModel {
	m.inputs[m.focus].Blur()
	m.focus = i
	m.inputs[m.focus].Focus()
	return m
}

// input is what gets saved: the typed fields plus the logo decision.
func (m companyFormModel) input() companyFormInput {
	return companyFormInput{
		id:           m.id,
		name:         strings.TrimSpace(m.inputs[formName].Value()),
		address:      strings.TrimSpace(m.inputs[formAddress].Value()),
		logoPath:     strings.TrimSpace(m.inputs[formLogo].Value()),
		originalLogo: m.originalLogo,
		removeLogo:   m.removeLogo,
	}
}

func (m companyFormModel) View() string {
	var b strings.Builder

	logo := valueOrDash(m.originalLogo)
	if m.removeLogo {
		logo = "(removed)"
	}

	b.WriteString(fmt.Sprintf("Name    │ %s\n", m.inputs[formName].View()))
	b.WriteString(fmt.Sprintf("Address │ %s\n", m.inputs[formAddress].View()))
	b.WriteString(fmt.Sprintf("Logo    │ %s\n", logo))
	b.WriteString(fmt.Sprintf("Upload  │ %s\n", m.inputs[formLogo].View()))

	if m.submitting {
		b.WriteString("\n[Saving...]\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render(m.errMsg) + "\n")
	}

	title := "NEW COMPANY"
	if m.editing() {
		title = "EDIT COMPANY"
	}
	hot := "tab: next field │ ctrl+s: save │ esc: cancel"
	if m.editing() && m.originalLogo != "" {
		hot = "tab: next field │ ctrl+x: remove logo │ ctrl+s: save │ esc: cancel"
	}
	return renderPage(title, strings.TrimRight(b.String(), "\n"), hot)
}

type companyFormInput struct {
	id           string
	name         string
	address      string
	logoPath     string
	originalLogo string
	removeLogo   bool
}

// saveCompany uploads the new logo if one was given, drops the replaced or
// removed one, then creates or updates the company. A failed cleanup of the
// old logo does not stop the save.
func saveCompany(ctx context.Context, svc *service.Services, in companyFormInput) (models.Company, error) {
	logoURL := in.originalLogo
	var stale string

	if in.removeLogo {
		logoURL = ""
		stale = in.originalLogo
	}

	if in.logoPath != "" {
		file, err := readLogo(in.logoPath)
		if err != nil {
			return models.Company{}, err
		}
		uploaded, err := svc.FileService.Upload(ctx, file)
		if err != nil {
			return models.Company{}, err
		}
		logoURL = uploaded.URL
		if in.originalLogo != "" && in.originalLogo != uploaded.URL {
			stale = in.originalLogo
		}
	}

	if key, ok := storedFileKey(stale); ok {
		// best effort, the company keeps its new logo either way
		_ = svc.FileService.Delete(ctx, key)
	}

	req := models.CompanyRequest{Name: in.name, Address: in.address, LogoURL: logoURL}
	if in.id == "" {
		return svc.CompanyService.Create(ctx, req)
	}
	return svc.CompanyService.Update(ctx, in.id, req)
}

// readLogo is replaced in tests.
var readLogo = func(path string) (models.FileUpload, error) {
	info, err := os.Stat(path)
	if err != nil {
		return models.FileUpload{}, fmt.Errorf("read logo: %w", err)
	}
	if info.Size() > maxLogoSize {
		return models.FileUpload{}, ErrLogoTooLarge
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return models.FileUpload{}, fmt.Errorf("read logo: %w", err)
	}
	return logoUpload(filepath.Base(path), content)
}

func logoUpload(name string, content []byte) (models.FileUpload, error) {
	if len(content) > maxLogoSize {
		return models.FileUpload{}, ErrLogoTooLarge
	}
	if !strings.HasPrefix(http.DetectContentType(content), "image/") {
		return models.FileUpload{}, ErrLogoNotImage
	}
	return models.FileUpload{FileName: name, Content: content}, nil
}

// storedFileKey turns a logo URL served by the file store into the key
// DELETE /files/{key} expects. Only https URLs point at stored objects.
func storedFileKey(logoURL string) (string, bool) {
	if !strings.HasPrefix(logoURL, "https://") {
		return "", false
	}
	u, err := url.Parse(logoURL)
	if err != nil {
		return "", false
	}
	key := strings.TrimPrefix(u.Path, "/")
	return key, key != ""
}
