// Copyright 2016 - 2024 The excelize Authors. All rights reserved. Use of
// this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package xlsxwriter

import "strings"

// HyperlinkType classifies a Hyperlink's target: a web/mail URL needing an
// External relationship, a local/remote file needing the same, or an
// internal same-workbook cell reference needing none.
type HyperlinkType int

const (
	HyperlinkUnknown HyperlinkType = iota
	HyperlinkURL
	HyperlinkInternal
	HyperlinkFile
)

// MaxParameterLength bounds string parameters like a hyperlink tooltip.
const MaxParameterLength = 255

// Hyperlink describes one cell's link: the target, the display text and
// tooltip the user sees, and the parsed pieces needed to emit both the
// cell's `<hyperlink>` record and the worksheet's relationship entry.
type Hyperlink struct {
	Col, Row int

	urlLink    string
	relLink    string
	userText   string
	toolTip    string
	relAnchor  string
	linkType   HyperlinkType
	relID      int
}

// NewHyperlink parses url into a Hyperlink anchored at (col, row). text, if
// non-empty, overrides the displayed text; tooltip is the mouseover text.
// Recognizes `http(s)://`, `ftp(s)://`, `mailto:`, `file://`, and
// `internal:` prefixes; any other scheme is an UnknownUrlType error.
func NewHyperlink(col, row int, url, text, tooltip string) (*Hyperlink, error) {
	h := &Hyperlink{
		Col: col, Row: row,
		urlLink: url, relLink: url, userText: text, toolTip: tooltip,
	}
	if err := h.parse(); err != nil {
		return nil, err
	}
	if len([]rune(h.urlLink)) > MaxURLLength || len([]rune(h.relAnchor)) > MaxURLLength {
		return nil, newErr(ErrMaxURLLength, "hyperlink target exceeds %d characters", MaxURLLength)
	}
	h.escape()
	if len([]rune(h.toolTip)) > MaxParameterLength {
		return nil, newErr(ErrParameter, "hyperlink tooltip exceeds %d characters", MaxParameterLength)
	}
	return h, nil
}

func (h *Hyperlink) parse() error {
	original := h.urlLink
	switch {
	case hasURLScheme(h.urlLink):
		h.linkType = HyperlinkURL
		if h.userText == "" {
			h.userText = h.urlLink
		}
		if url, anchor, ok := splitOnce(h.urlLink, '#'); ok {
			h.urlLink, h.relAnchor = url, anchor
		}

	case strings.HasPrefix(h.urlLink, "mailto:"):
		h.linkType = HyperlinkURL
		if h.userText == "" {
			h.userText = strings.TrimPrefix(h.urlLink, "mailto:")
		}

	case strings.HasPrefix(h.urlLink, "internal:"):
		h.linkType = HyperlinkInternal
		h.relAnchor = strings.TrimPrefix(h.urlLink, "internal:")
		if h.userText == "" {
			h.userText = h.relAnchor
		}

	case strings.HasPrefix(h.urlLink, "file://"):
		h.linkType = HyperlinkFile
		path := strings.TrimPrefix(h.urlLink, "file:///")
		path = strings.TrimPrefix(path, "file://")
		if !isRemoteFilePath(path) {
			h.urlLink = path
		}
		h.relLink = h.urlLink
		if !isRemoteFilePath(path) {
			h.relLink = strings.ReplaceAll(h.relLink, `\`, "/")
		}
		if h.userText == "" {
			h.userText = path
		}
		if url, anchor, ok := splitOnce(h.urlLink, '#'); ok {
			h.urlLink, h.relAnchor = url, anchor
		}

	default:
		return newErr(ErrUnknownURLType, "unrecognized hyperlink url scheme: %s", original)
	}
	return nil
}

func hasURLScheme(s string) bool {
	for _, scheme := range [...]string{"http://", "https://", "ftp://", "ftps://"} {
		if strings.HasPrefix(s, scheme) {
			return true
		}
	}
	return false
}

// isRemoteFilePath reports whether path is a UNC path (`\\server\share`) or
// a drive-letter path (`C:\...`), which Excel stores verbatim rather than
// slash-normalized.
func isRemoteFilePath(path string) bool {
	if strings.HasPrefix(path, `\\`) {
		return true
	}
	return len(path) >= 2 && isColLetter(path[0]) && path[1] == ':'
}

func splitOnce(s string, sep byte) (before, after string, ok bool) {
	i := strings.IndexByte(s, sep)
	if i < 0 {
		return s, "", false
	}
	return s[:i], s[i+1:], true
}

func (h *Hyperlink) escape() {
	if !hasKnownEscape(h.urlLink) {
		h.urlLink = escapeURL(h.urlLink)
	}
	if h.linkType != HyperlinkInternal && !hasKnownEscape(h.relLink) {
		h.relLink = escapeURL(h.relLink)
	}
	if h.linkType == HyperlinkFile {
		h.relLink = strings.ReplaceAll(h.relLink, "#", "%23")
	}
}

// Target returns the relationship target for this link: the internal form
// replaces the `internal:` pseudo-scheme with `#`, since Excel stores same-
// workbook references as a same-document fragment.
func (h *Hyperlink) Target() string {
	if h.linkType == HyperlinkInternal {
		return "#" + h.relAnchor
	}
	return h.relLink
}

// TargetMode returns "External" for url/file links, or "" for internal
// links (which need no relationship TargetMode attribute at all).
func (h *Hyperlink) TargetMode() string {
	if h.linkType == HyperlinkInternal {
		return ""
	}
	return "External"
}

// NeedsRelationship reports whether this link consumes a relationship id;
// internal links resolve purely by cell reference and don't.
func (h *Hyperlink) NeedsRelationship() bool {
	return h.linkType == HyperlinkURL || h.linkType == HyperlinkFile
}

// DisplayText is the text shown in the cell.
func (h *Hyperlink) DisplayText() string { return h.userText }

// ToolTip is the mouseover tooltip, if any.
func (h *Hyperlink) ToolTip() string { return h.toolTip }

// Anchor is the `location` attribute for the sheet's `<hyperlink>` record
// (always empty for url/file links, the cell/range reference for internal
// links).
func (h *Hyperlink) Anchor() string {
	if h.linkType == HyperlinkInternal {
		return h.relAnchor
	}
	return ""
}
