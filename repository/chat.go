package repository

import (
	"context"
	"time"

	"youwilldrive/domain"
)

type chatRepository struct {
	gw Gateway
}

func NewChatRepository(gw Gateway) domain.ChatRepository {
	return &chatRepository{gw: gw}
}

// GetAllChats builds the monitor list: participants resolved through
// participates, last message and count through belongs_to. Read-only,
// the admin panel never writes chat data.
func (r *chatRepository) GetAllChats(ctx context.Context) ([]domain.ChatSummary, error) {
	results, err := r.gw.Query(ctx, `
		SELECT
			id,
			(SELECT name, surname, patronymic, phone, (SELECT name_en FROM ->of_role->roles)[0].name_en AS role FROM (SELECT VALUE out FROM participates WHERE in = $parent.id)) AS participants,
			(SELECT text, date_sent FROM messages WHERE ->belongs_to->chats.id CONTAINS $parent.id ORDER BY date_sent DESC LIMIT 1)[0] AS last_message,
			(SELECT * FROM messages WHERE ->belongs_to->chats.id CONTAINS $parent.id).len() AS message_count
		FROM chats
	`, nil)
	if err != nil {
		return nil, err
	}

	rows := rowsOf(results, 0)
	summaries := make([]domain.ChatSummary, 0, len(rows))
	for _, row := range rows {
		summary := domain.ChatSummary{
			ID:              idString(row["id"]),
			CadetName:       "Неизвестный курсант",
			InstructorName:  "Неизвестный инструктор",
			LastMessage:     "Нет сообщений.",
			MessageCount:    int(num(row, "message_count")),
			CadetPhone:      "N/A",
			InstructorPhone: "N/A",
		}

		for _, p := range asRows(row["participants"]) {
			user := userFromRow(p)
			switch user.Role {
			case domain.RoleCadet:
				summary.CadetName = user.FullName()
				summary.CadetPhone = user.Phone
			case domain.RoleInstructor:
				summary.InstructorName = user.FullName()
				summary.InstructorPhone = user.Phone
			}
		}

		if last := asRow(row["last_message"]); last != nil {
			if text := str(last, "text"); text != "" {
				summary.LastMessage = text
			}
			if sent, ok := timeValue(last["date_sent"]); ok {
				t := sent
				summary.LastMessageTime = &t
				summary.LastActivity = &t
			}
		}

		summaries = append(summaries, summary)
	}
	return summaries, nil
}

func (r *chatRepository) GetMessages(ctx context.Context, chatID string) ([]domain.ChatMessage, error) {
	cid, err := ParseRecordID(chatID)
	if err != nil {
		return nil, err
	}

	results, err := r.gw.Query(ctx, `
		SELECT *,
			(SELECT *, (SELECT name_en FROM ->of_role->roles)[0].name_en AS role FROM (SELECT VALUE out FROM sent_by WHERE in = $parent.id)[0])[0] AS sender
		FROM messages
		WHERE (SELECT VALUE id FROM ->belongs_to->chats.id) CONTAINS $chat
		ORDER BY date_sent ASC
	`, map[string]interface{}{"chat": cid})
	if err != nil {
		return nil, err
	}

	rows := rowsOf(results, 0)
	messages := make([]domain.ChatMessage, 0, len(rows))
	for _, row := range rows {
		msg := domain.ChatMessage{
			ID:   idString(row["id"]),
			Text: str(row, "text"),
		}
		if sent, ok := timeValue(row["date_sent"]); ok {
			msg.DateSent = sent
		} else {
			msg.DateSent = time.Time{}
		}
		if sender := asRow(row["sender"]); sender != nil {
			user := userFromRow(sender)
			msg.Sender = &user
		}
		messages = append(messages, msg)
	}
	return messages, nil
}
