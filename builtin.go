package mimekit

// DefaultRegistryBuilder returns a builder preloaded with the built-in
// media types: common image, document, archive, audio, video, text, and
// font formats with their extensions, magic signatures, and XML root
// associations. Callers can layer custom definitions on top before
// freezing it with Build.
func DefaultRegistryBuilder() *RegistryBuilder {
	b := NewRegistryBuilder()

	// Images
	b.Type("image/jpeg").Description("JPEG Image").Acronym("JPEG").
		UTI("public.jpeg").
		Extensions("jpg", "jpeg", "jpe").
		Signature(0, []byte{0xFF, 0xD8, 0xFF})
	b.Type("image/png").Description("Portable Network Graphics").Acronym("PNG").
		UTI("public.png").
		Extensions("png").
		Signature(0, []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A})
	b.Type("image/gif").Description("Graphics Interchange Format").Acronym("GIF").
		UTI("com.compuserve.gif").
		Extensions("gif").
		Signature(0, []byte("GIF87a")).
		Signature(0, []byte("GIF89a"))
	b.Type("image/webp").Description("WebP Image").
		Extensions("webp").
		Signature(8, []byte("WEBP")) // after RIFF header
	b.Type("image/bmp").Description("Windows Bitmap").Acronym("BMP").
		Extensions("bmp").
		Signature(0, []byte("BM"))
	b.Type("image/tiff").Description("Tagged Image File Format").Acronym("TIFF").
		UTI("public.tiff").
		Extensions("tiff", "tif").
		Signature(0, []byte{0x49, 0x49, 0x2A, 0x00}). // little endian
		Signature(0, []byte{0x4D, 0x4D, 0x00, 0x2A})  // big endian
	b.Type("image/x-icon").Description("Windows Icon").
		Extensions("ico").
		Signature(0, []byte{0x00, 0x00, 0x01, 0x00}).
		Alias("image/vnd.microsoft.icon")
	b.Type("image/heic").Description("High Efficiency Image Container").Acronym("HEIC").
		Extensions("heic", "heif").
		Signature(4, []byte("ftypheic")).
		Signature(4, []byte("ftypmif1"))
	b.Type("image/avif").Description("AV1 Image File Format").Acronym("AVIF").
		Extensions("avif").
		Signature(4, []byte("ftypavif"))
	b.Type("image/svg+xml").Description("Scalable Vector Graphics").Acronym("SVG").
		UTI("public.svg-image").
		Extensions("svg", "svgz").
		RootXML("http://www.w3.org/2000/svg", "svg").
		RootXML("", "svg")

	// Documents
	b.Type("application/pdf").Description("Portable Document Format").Acronym("PDF").
		UTI("com.adobe.pdf").
		Link("https://www.iso.org/standard/75839.html").
		Extensions("pdf").
		Signature(0, []byte("%PDF-")).
		Alias("application/x-pdf")
	b.Type("application/msword").Description("Microsoft Word Document").
		Extensions("doc")
	b.Type("application/vnd.openxmlformats-officedocument.wordprocessingml.document").
		Description("Office Open XML Document").
		Extensions("docx")
	b.Type("application/vnd.ms-excel").Description("Microsoft Excel Spreadsheet").
		Extensions("xls")
	b.Type("application/vnd.openxmlformats-officedocument.spreadsheetml.sheet").
		Description("Office Open XML Workbook").
		Extensions("xlsx")
	b.Type("application/vnd.ms-powerpoint").Description("Microsoft PowerPoint Presentation").
		Extensions("ppt")
	b.Type("application/vnd.openxmlformats-officedocument.presentationml.presentation").
		Description("Office Open XML Presentation").
		Extensions("pptx")
	b.Type("application/rtf").Description("Rich Text Format").Acronym("RTF").
		Extensions("rtf").
		Signature(0, []byte("{\\rtf")).
		Alias("text/rtf")

	// Archives
	// Note: Office docs (DOCX, XLSX, PPTX) and JAR also use the ZIP
	// container; refining a ZIP match is the caller's concern.
	b.Type("application/zip").Description("ZIP Archive").Acronym("ZIP").
		UTI("com.pkware.zip-archive").
		Extensions("zip").
		Signature(0, []byte{0x50, 0x4B, 0x03, 0x04}).
		Signature(0, []byte{0x50, 0x4B, 0x05, 0x06}). // empty ZIP
		Signature(0, []byte{0x50, 0x4B, 0x07, 0x08})  // spanned ZIP
	b.Type("application/gzip").Description("Gzip Compressed Data").
		Extensions("gz", "gzip").
		Signature(0, []byte{0x1F, 0x8B}).
		Alias("application/x-gzip")
	b.Type("application/x-tar").Description("Tape Archive").Acronym("TAR").
		Extensions("tar").
		Signature(257, []byte("ustar")) // POSIX tar
	b.Type("application/x-rar-compressed").Description("RAR Archive").Acronym("RAR").
		Extensions("rar").
		Signature(0, []byte("Rar!\x1a\x07\x00")).
		Signature(0, []byte("Rar!\x1a\x07\x01\x00")) // RAR5
	b.Type("application/x-7z-compressed").Description("7-Zip Archive").
		Extensions("7z").
		Signature(0, []byte{'7', 'z', 0xBC, 0xAF, 0x27, 0x1C})
	b.Type("application/x-bzip2").Description("Bzip2 Compressed Data").
		Extensions("bz2").
		Signature(0, []byte("BZh"))
	b.Type("application/x-xz").Description("XZ Compressed Data").
		Extensions("xz").
		Signature(0, []byte{0xFD, '7', 'z', 'X', 'Z', 0x00})

	// Audio
	b.Type("audio/mpeg").Description("MPEG Audio").Acronym("MP3").
		Extensions("mp3").
		Signature(0, []byte("ID3")).      // MP3 with ID3
		Signature(0, []byte{0xFF, 0xFB}). // MP3 frame sync
		Signature(0, []byte{0xFF, 0xFA}).
		Signature(0, []byte{0xFF, 0xF3}).
		Signature(0, []byte{0xFF, 0xF2})
	b.Type("audio/flac").Description("Free Lossless Audio Codec").Acronym("FLAC").
		Extensions("flac").
		Signature(0, []byte("fLaC"))
	b.Type("audio/ogg").Description("Ogg Audio").
		Extensions("ogg", "oga").
		Signature(0, []byte("OggS"))
	b.Type("audio/wav").Description("Waveform Audio").Acronym("WAV").
		Extensions("wav").
		Signature(0, []byte("RIFF")). // WAVE marker sits at offset 8
		Alias("audio/x-wav")
	b.Type("audio/aac").Description("Advanced Audio Coding").Acronym("AAC").
		Extensions("aac").
		Signature(0, []byte{0xFF, 0xF1}). // ADTS
		Signature(0, []byte{0xFF, 0xF9}).
		Signature(0, []byte("ADIF"))
	b.Type("audio/midi").Description("Musical Instrument Digital Interface").Acronym("MIDI").
		Extensions("mid", "midi").
		Signature(0, []byte("MThd")).
		Alias("audio/x-midi")
	b.Type("audio/mp4").Description("MPEG-4 Audio").
		Extensions("m4a")

	// Video
	b.Type("video/webm").Description("WebM Video").
		Extensions("webm").
		Signature(0, []byte{0x1A, 0x45, 0xDF, 0xA3}) // EBML (WebM/MKV)
	b.Type("video/x-matroska").Description("Matroska Video").Acronym("MKV").
		Extensions("mkv").
		Signature(0, []byte{0x1A, 0x45, 0xDF, 0xA3}) // MKV uses same header
	b.Type("video/mp4").Description("MPEG-4 Video").
		Extensions("mp4", "m4v").
		Signature(4, []byte("ftyp"))
	b.Type("video/quicktime").Description("QuickTime Video").
		Extensions("mov").
		Signature(4, []byte("moov")).
		Signature(4, []byte("free"))
	b.Type("video/x-msvideo").Description("Audio Video Interleave").Acronym("AVI").
		Extensions("avi").
		Signature(0, []byte("RIFF")) // AVI marker sits at offset 8
	b.Type("video/x-flv").Description("Flash Video").Acronym("FLV").
		Extensions("flv").
		Signature(0, []byte("FLV"))
	b.Type("video/3gpp").Description("3GPP Video").
		Extensions("3gp").
		Signature(4, []byte("ftyp3g"))
	b.Type("video/mpeg").Description("MPEG Video").
		Extensions("mpeg", "mpg")

	// Text and data
	b.Type("text/plain").Description("Plain Text").
		Extensions("txt", "text")
	b.Type("text/html").Description("HyperText Markup Language").Acronym("HTML").
		UTI("public.html").
		Extensions("html", "htm").
		Signature(0, []byte("<!DOCTYPE html")).
		Signature(0, []byte("<!doctype html")).
		Signature(0, []byte("<html")).
		Signature(0, []byte("<HTML")).
		RootXML("http://www.w3.org/1999/xhtml", "html").
		RootXML("", "html")
	b.Type("text/css").Description("Cascading Style Sheets").Acronym("CSS").
		Extensions("css")
	b.Type("text/csv").Description("Comma-Separated Values").Acronym("CSV").
		Extensions("csv")
	b.Type("text/markdown").Description("Markdown Text").
		Extensions("md", "markdown")
	b.Type("text/javascript").Description("JavaScript Source").Acronym("JS").
		Extensions("js", "mjs").
		Alias("application/javascript")
	b.Type("application/json").Description("JavaScript Object Notation").Acronym("JSON").
		UTI("public.json").
		Extensions("json")
	b.Type("application/xml").Description("Extensible Markup Language").Acronym("XML").
		UTI("public.xml").
		Extensions("xml", "xsd").
		Signature(0, []byte("<?xml")).
		Alias("text/xml")
	b.Type("application/rdf+xml").Description("Resource Description Framework").Acronym("RDF").
		Extensions("rdf", "owl").
		RootXML("http://www.w3.org/1999/02/22-rdf-syntax-ns#", "RDF")
	b.Type("application/atom+xml").Description("Atom Syndication Format").
		Extensions("atom").
		RootXML("http://www.w3.org/2005/Atom", "feed")
	b.Type("application/rss+xml").Description("Really Simple Syndication").Acronym("RSS").
		Extensions("rss").
		RootXML("", "rss")
	b.Type("application/xslt+xml").Description("XSL Transformations").Acronym("XSLT").
		Extensions("xsl", "xslt").
		RootXML("http://www.w3.org/1999/XSL/Transform", "stylesheet")
	b.Type("application/vnd.google-earth.kml+xml").Description("Keyhole Markup Language").Acronym("KML").
		Extensions("kml").
		RootXML("http://www.opengis.net/kml/2.2", "kml")

	// Executables
	b.Type("application/x-msdownload").Description("Windows Executable").
		Extensions("exe", "dll").
		Signature(0, []byte("MZ"))
	b.Type("application/x-mach-binary").Description("Mach-O Binary").
		Signature(0, []byte{0xCF, 0xFA, 0xED, 0xFE}). // 64-bit
		Signature(0, []byte{0xCE, 0xFA, 0xED, 0xFE})  // 32-bit
	b.Type("application/x-executable").Description("ELF Binary").Acronym("ELF").
		Signature(0, []byte{0x7F, 'E', 'L', 'F'})

	// Fonts
	b.Type("font/woff").Description("Web Open Font Format").Acronym("WOFF").
		Extensions("woff").
		Signature(0, []byte("wOFF"))
	b.Type("font/woff2").Description("Web Open Font Format 2").Acronym("WOFF2").
		Extensions("woff2").
		Signature(0, []byte("wOF2"))
	b.Type("font/otf").Description("OpenType Font").Acronym("OTF").
		Extensions("otf").
		Signature(0, []byte("OTTO"))
	b.Type("font/ttf").Description("TrueType Font").Acronym("TTF").
		Extensions("ttf").
		Signature(0, []byte{0x00, 0x01, 0x00, 0x00})

	// Fallback
	b.Type("application/octet-stream").Description("Arbitrary Binary Data").
		Extensions("bin")

	return b
}

// DefaultRegistry builds the registry of built-in media types.
func DefaultRegistry() *Registry {
	reg, err := DefaultRegistryBuilder().Build()
	if err != nil {
		// The built-in table is static; a build failure is a programming
		// error in this package.
		panic(err)
	}
	return reg
}
