package entity

import (
	"net/url"
	"strings"
)

// YoutubeEmbedLink rewrites watch, short and share links to the
// /embed/<id> form. Links it does not recognise are returned trimmed.
func YoutubeEmbedLink(link string) string {
	link = strings.TrimSpace(link)
	u, err := url.Parse(link)
	if err != nil || u.Host == "" {
		return link
	}

	host := strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
	host = strings.TrimPrefix(host, "m.")
	segments := pathSegments(u.Path)

	var id string
	switch host {
	case "youtu.be":
		if len(segments) > 0 {
			id = segments[0]
		}
	case "youtube.com", "youtube-nocookie.com":
		switch {
		case len(segments) == 1 && segments[0] == "watch":
			id = u.Query().Get("v")
		case len(segments) >= 2 && (segments[0] == "embed" || segments[0] == "shorts" || segments[0] == "live"):
			id = segments[1]
		}
	}
	if id == "" {
		return link
	}
	return "https://www.youtube.com/embed/" + id
}

// DriveEmbedLink rewrites Google Drive file links to their /preview form.
func DriveEmbedLink(link string) string {
	link = strings.TrimSpace(link)
	u, err := url.Parse(link)
	if err != nil || !strings.EqualFold(u.Hostname(), "drive.google.com") {
		return link
	}

	segments := pathSegments(u.Path)
	var id string
	switch {
	case len(segments) >= 3 && segments[0] == "file" && segments[1] == "d":
		id = segments[2]
	case len(segments) == 1 && (segments[0] == "open" || segments[0] == "uc"):
		id = u.Query().Get("id")
	}
	if id == "" {
		return link
	}
	return "https://drive.google.com/file/d/" + id + "/preview"
}

func pathSegments(p string) []string {
	var out []string
	for _, s := range strings.Split(p, "/") {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}
