// Package tesseract provides OCR for scanned PDF pages.
// It implements the driven.OCREngine interface.
//
// The real engine renders pages with MuPDF (go-fitz) and recognises
// them with Tesseract (gosseract); both need CGO and the native
// libraries installed. Builds without CGO get a stub whose Available()
// is false, so ingestion degrades to text-layer extraction instead of
// failing.
package tesseract
