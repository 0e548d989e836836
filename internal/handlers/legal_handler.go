package handlers

import "github.com/gofiber/fiber/v2"

// LegalHandler serves the static legal pages the mobile app links to.
type LegalHandler struct{}

func NewLegalHandler() *LegalHandler {
	return &LegalHandler{}
}

func (h *LegalHandler) PrivacyPolicy(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"title": "Privacy Policy",
		"body": "Kinfolk stores the profile and update data you and your family " +
			"enter, and nothing else. Photos are kept in private storage buckets. " +
			"We never sell personal data. Blocking a user hides their content from " +
			"you immediately; reports are reviewed within 24 hours.",
	})
}

func (h *LegalHandler) TermsOfService(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"title": "Terms of Service",
		"body": "You must be 13 or older to create an account. You are responsible " +
			"for content you post. Objectionable content and abusive behavior lead " +
			"to removal and account termination.",
	})
}

func (h *LegalHandler) ChildrensPrivacy(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"title": "Children's Privacy",
		"body": "Kinfolk complies with COPPA. Accounts cannot be created for " +
			"children under 13, and accounts found to belong to children under 13 " +
			"are restricted and deleted on request of a parent or guardian.",
	})
}
