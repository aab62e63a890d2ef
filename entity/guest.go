package entity

type InviteGuestRequest struct {
	Email                string `json:"email"`
	GuestName            string `json:"guestName"`
	ToSendEmailToGuest   bool   `json:"toSendEmailToGuest"`
	GuestFinishedWebhook string `json:"guestFinishedWebhook"`
	IncludeInviteInRes   bool   `json:"includeInviteInRes"`
}
