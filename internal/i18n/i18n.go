// Package i18n provides internationalization support for the webster service.
// It handles translation of user-facing notifications and error messages.
package i18n

import (
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
)

const (
	// DefaultLocale is the default language locale (English).
	DefaultLocale = "en"
	// AcceptLanguageHeader is the HTTP header name for language preference.
	AcceptLanguageHeader = "Accept-Language"
)

var (
	// defaultTranslator is the singleton translator instance.
	defaultTranslator *Translator
	translatorOnce    sync.Once
)

// Translator handles message translation for different locales.
type Translator struct {
	messages map[string]map[string]string
}

// NewTranslator creates a new translator with the default messages.
func NewTranslator() *Translator {
	return &Translator{
		messages: getDefaultMessages(),
	}
}

// GetTranslator returns the default singleton translator instance.
func GetTranslator() *Translator {
	translatorOnce.Do(func() {
		defaultTranslator = NewTranslator()
	})
	return defaultTranslator
}

// Translate returns the translated message for the given key and locale.
// Falls back to DefaultLocale if the locale is not found.
func (t *Translator) Translate(key, locale string) string {
	if locale == "" {
		locale = DefaultLocale
	}

	localeMessages, ok := t.messages[locale]
	if !ok {
		localeMessages = t.messages[DefaultLocale]
	}

	msg, ok := localeMessages[key]
	if !ok {
		// Fallback to default locale
		if defaultMessages := t.messages[DefaultLocale]; defaultMessages != nil {
			if fallbackMsg, exists := defaultMessages[key]; exists {
				return fallbackMsg
			}
		}
		return key
	}

	return msg
}

// GetLocale extracts the locale from the gin context.
// Checks Accept-Language header and falls back to DefaultLocale.
func GetLocale(c *gin.Context) string {
	acceptLang := c.GetHeader(AcceptLanguageHeader)
	if acceptLang == "" {
		return DefaultLocale
	}

	// Parse Accept-Language header (e.g., "en-US,en;q=0.9,pt;q=0.8")
	parts := strings.Split(acceptLang, ",")
	if len(parts) > 0 {
		lang := strings.TrimSpace(strings.Split(parts[0], ";")[0])
		// Extract base language (e.g., "en" from "en-US")
		if idx := strings.Index(lang, "-"); idx > 0 {
			lang = lang[:idx]
		}
		// Normalize to lowercase
		lang = strings.ToLower(lang)
		// Validate it's a supported locale
		if _, ok := getDefaultMessages()[lang]; ok {
			return lang
		}
	}

	return DefaultLocale
}

// getDefaultMessages returns the default message translations.
func getDefaultMessages() map[string]map[string]string {
	return map[string]map[string]string{
		"en": {
			// Error messages
			"error.invalid_request":      "Invalid request",
			"error.invalid_request_body": "Invalid request body",
			"error.internal_error":       "An unexpected error occurred",
			"error.unauthorized":         "Unauthorized",
			"error.not_found":            "Not found",
			"error.rate_limit_exceeded":  "Too many requests, please try again later",
			"error.invalid_token":        "Invalid or expired token",
			"error.token_required":       "Authentication token is required",
			"error.timeout":              "Request timed out",
			"error.storage_unavailable":  "Storage is temporarily unavailable",

			// Workflow notifications
			"workflow.pack_already_completed.title":   "Pack already completed",
			"workflow.pack_already_completed.message": "This pack has been completed and its checklist can no longer be changed",
			"workflow.step_not_found.title":           "Step not found",
			"workflow.step_not_found.message":         "The checklist step does not belong to this pack, refresh and try again",
			"workflow.pack_not_found.title":           "Pack not found",
			"workflow.pack_not_found.message":         "No webster pack exists with that id",
			"workflow.step_completed.title":           "Step completed",
			"workflow.step_completed.message":         "Checklist step recorded",
			"workflow.pack_completed.title":           "Pack completed",
			"workflow.pack_completed.message":         "All checklist steps are done, the pack is ready for collection",
			"workflow.scan_verified.title":            "Medication verified",
			"workflow.scan_verified.message":          "The scanned barcode matches a medication in this pack",
			"workflow.scan_unmatched.title":           "No match",
			"workflow.scan_unmatched.message":         "The scanned barcode does not match any medication in this pack",
			"workflow.pack_created.title":             "Pack created",
			"workflow.pack_created.message":           "A new webster pack was created with the standard checklist",
		},
		"pt": {
			// Error messages
			"error.invalid_request":      "Requisição inválida",
			"error.invalid_request_body": "Corpo da requisição inválido",
			"error.internal_error":       "Ocorreu um erro inesperado",
			"error.unauthorized":         "Não autorizado",
			"error.not_found":            "Não encontrado",
			"error.rate_limit_exceeded":  "Muitas requisições, tente novamente mais tarde",
			"error.invalid_token":        "Token inválido ou expirado",
			"error.token_required":       "Token de autenticação é obrigatório",
			"error.timeout":              "Tempo de requisição esgotado",
			"error.storage_unavailable":  "Armazenamento temporariamente indisponível",

			// Workflow notifications
			"workflow.pack_already_completed.title":   "Pacote já concluído",
			"workflow.pack_already_completed.message": "Este pacote foi concluído e sua lista não pode mais ser alterada",
			"workflow.step_not_found.title":           "Etapa não encontrada",
			"workflow.step_not_found.message":         "A etapa não pertence a este pacote, atualize e tente novamente",
			"workflow.pack_not_found.title":           "Pacote não encontrado",
			"workflow.pack_not_found.message":         "Nenhum pacote webster existe com esse id",
			"workflow.step_completed.title":           "Etapa concluída",
			"workflow.step_completed.message":         "Etapa da lista registrada",
			"workflow.pack_completed.title":           "Pacote concluído",
			"workflow.pack_completed.message":         "Todas as etapas foram concluídas, o pacote está pronto para retirada",
			"workflow.scan_verified.title":            "Medicamento verificado",
			"workflow.scan_verified.message":          "O código de barras corresponde a um medicamento deste pacote",
			"workflow.scan_unmatched.title":           "Sem correspondência",
			"workflow.scan_unmatched.message":         "O código de barras não corresponde a nenhum medicamento deste pacote",
			"workflow.pack_created.title":             "Pacote criado",
			"workflow.pack_created.message":           "Um novo pacote webster foi criado com a lista padrão",
		},
	}
}
