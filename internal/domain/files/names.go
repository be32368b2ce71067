package files

import (
	"fmt"
	"net/url"
	"strings"
)

// Content types que se tratan como recursos RDF (linked data) en vez
// de archivos opacos.
var rdfContentTypes = []string{
	"text/turtle",
	"application/ld+json",
	"application/trig",
}

var imageExtensions = []string{"jpg", "jpeg", "png", "gif", "bmp", "webp"}

// IsRDFContentType responde si el content type (sin parámetros)
// corresponde a un recurso RDF.
func IsRDFContentType(contentType string) bool {
	ct := BareContentType(contentType)
	for _, known := range rdfContentTypes {
		if ct == known {
			return true
		}
	}
	return false
}

// BareContentType tira los parámetros después del ";" (charset, etc).
func BareContentType(contentType string) string {
	bare, _, _ := strings.Cut(contentType, ";")
	return strings.TrimSpace(bare)
}

// IsContainer: un resource URI con "/" final denota una colección,
// no un item suelto.
func IsContainer(resourceURI string) bool {
	return strings.HasSuffix(resourceURI, "/")
}

// IsImageFile decide por extensión.
func IsImageFile(fileName string) bool {
	parts := strings.Split(fileName, ".")
	if len(parts) < 2 {
		return false
	}
	ext := strings.ToLower(parts[len(parts)-1])
	for _, e := range imageExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

// NameFromURI saca el nombre de archivo del último segmento del path.
func NameFromURI(uri string) string {
	i := strings.LastIndex(uri, "/")
	if i < 0 {
		return uri
	}
	return uri[i+1:]
}

// FormatResourceName arma el nombre de display de un recurso:
// último segmento del path, sin extensión si es RDF, capitalizado si
// es un container.
func FormatResourceName(resource string, isRDFResource bool, resourceURI string) string {
	isContainer := resourceURI != "" && strings.HasSuffix(resourceURI, "/")

	trimmed := strings.TrimSuffix(resource, "/")
	parts := strings.Split(trimmed, "/")
	last := parts[len(parts)-1]

	switch {
	case isRDFResource && strings.Contains(last, "."):
		dot := strings.LastIndex(last, ".")
		last = last[:dot]
	case isContainer:
		last = capitalize(last)
	}
	return last
}

// AddSpacesToCamelCase separa palabras de un identificador camelCase.
func AddSpacesToCamelCase(s string) string {
	var b strings.Builder
	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' {
			prev := rune(s[i-1])
			if prev >= 'a' && prev <= 'z' {
				b.WriteRune(' ')
			}
		}
		b.WriteRune(r)
	}
	return b.String()
}

// EncodeResourceName percent-encodea un nombre de recurso para URL.
// url.PathEscape deja pasar !'()* pero el backend no los soporta sin
// encodear, así que se escapan a mano.
func EncodeResourceName(input string) string {
	escaped := url.PathEscape(input)

	replacer := strings.NewReplacer(
		"!", fmt.Sprintf("%%%X", '!'),
		"'", fmt.Sprintf("%%%X", '\''),
		"(", fmt.Sprintf("%%%X", '('),
		")", fmt.Sprintf("%%%X", ')'),
		"*", fmt.Sprintf("%%%X", '*'),
	)
	return replacer.Replace(escaped)
}

func capitalize(word string) string {
	if word == "" {
		return word
	}
	return strings.ToUpper(word[:1]) + word[1:]
}
