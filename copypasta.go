// Package copypasta turns web pages, PDFs, images and video transcripts into
// plain text that can be pasted into a prompt or sent to a hosted language
// model in bounded chunks.
//
// This package contains domain types, interfaces and the small amount of pure
// policy shared by every implementation: source classification, the OCR
// fallback rule, chunking, prompt templates and response assembly.
// Implementations live in subdirectories named after their primary
// dependency (e.g., goquery/, pdf/, tesseract/, gemini/).
package copypasta
