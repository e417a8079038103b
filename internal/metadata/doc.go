// Package metadata extracts the bibliographic tuple (title, author list)
// from an EPUB container. It decodes META-INF/container.xml to locate the
// OPF package document and reads dc:title and dc:creator from its metadata
// block.
//
// Creator resolution follows a closed order decided once here, at the
// boundary: creators tagged with role "aut", then all creators, then none.
// The normalization pipeline never has to probe alternative field shapes.
package metadata
