package metadata

import (
	"archive/zip"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

const containerPath = "META-INF/container.xml"

// Sentinel errors for the two ways a container can be structurally unusable.
var (
	ErrNoContainer = errors.New("missing META-INF/container.xml")
	ErrNoRootfile  = errors.New("container.xml declares no rootfile")
)

type containerDoc struct {
	Rootfiles []rootfile `xml:"rootfiles>rootfile"`
}

type rootfile struct {
	FullPath  string `xml:"full-path,attr"`
	MediaType string `xml:"media-type,attr"`
}

type packageDoc struct {
	Metadata opfMetadata `xml:"metadata"`
}

type opfMetadata struct {
	Titles   []string     `xml:"title"`
	Creators []opfCreator `xml:"creator"`
}

type opfCreator struct {
	Role string `xml:"role,attr"`
	Name string `xml:",chardata"`
}

// ReadOPF returns the raw bytes of the container's OPF package document.
func ReadOPF(zr *zip.Reader) ([]byte, error) {
	data, err := readEntry(zr, containerPath)
	if err != nil {
		return nil, ErrNoContainer
	}

	var c containerDoc
	if err := xml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse container.xml: %w", err)
	}

	// The first rootfile wins; multi-rendition containers list the default
	// rendition first.
	for _, rf := range c.Rootfiles {
		if rf.FullPath == "" {
			continue
		}
		opf, err := readEntry(zr, rf.FullPath)
		if err != nil {
			return nil, fmt.Errorf("read rootfile %s: %w", rf.FullPath, err)
		}
		return opf, nil
	}
	return nil, ErrNoRootfile
}

func parseOPF(data []byte) (RawMetadata, error) {
	var p packageDoc
	if err := xml.Unmarshal(data, &p); err != nil {
		return RawMetadata{}, fmt.Errorf("parse OPF: %w", err)
	}

	var meta RawMetadata
	for _, t := range p.Metadata.Titles {
		if t = strings.TrimSpace(t); t != "" {
			meta.Title = t
			break
		}
	}
	meta.Authors = resolveCreators(p.Metadata.Creators)
	return meta, nil
}

// resolveCreators applies the closed resolution order: role-tagged authors
// first, then every creator, then nothing.
func resolveCreators(creators []opfCreator) []string {
	var authors []string
	for _, c := range creators {
		if strings.EqualFold(strings.TrimSpace(c.Role), "aut") {
			if name := strings.TrimSpace(c.Name); name != "" {
				authors = append(authors, name)
			}
		}
	}
	if len(authors) > 0 {
		return authors
	}
	for _, c := range creators {
		if name := strings.TrimSpace(c.Name); name != "" {
			authors = append(authors, name)
		}
	}
	return authors
}

func readEntry(zr *zip.Reader, name string) ([]byte, error) {
	for _, f := range zr.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, err
		}
		defer rc.Close()
		return io.ReadAll(rc)
	}
	return nil, fmt.Errorf("entry %s not found", name)
}
