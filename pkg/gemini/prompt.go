package gemini

// ActionItemSystemPrompt instructs the model to answer with a bare JSON array.
const ActionItemSystemPrompt = "회의록에서 액션 아이템을 JSON 배열로만 반환. " +
	"각 항목은 {id:number, text:string, assignedTo:string|null, dueDate:string|null}. " +
	"없으면 []만 반환. JSON 외 텍스트 금지."

// BuildActionItemPrompt builds the user turn for action item extraction.
func BuildActionItemPrompt(text string) string {
	return "다음 회의록에서 액션 아이템을 JSON 배열로 반환:\n\n" + text
}
