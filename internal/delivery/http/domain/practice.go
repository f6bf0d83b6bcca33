package domain

var (
	BANK_LIST_SUCCESS          = "Successfully listed question banks"
	BANK_LIST_FAILED           = "Failed to list question banks"
	BANK_LAST_USED_SUCCESS     = "Successfully got last used bank"
	BANK_LAST_USED_FAILED      = "Failed to get last used bank"
	BANK_SET_LAST_USED_SUCCESS = "Successfully set last used bank"
	BANK_SET_LAST_USED_FAILED  = "Failed to set last used bank"
	WRONG_LIST_SUCCESS         = "Successfully listed wrong questions"
	WRONG_LIST_FAILED          = "Failed to list wrong questions"
	WRONG_REMOVE_SUCCESS       = "Successfully removed wrong question"
	WRONG_REMOVE_FAILED        = "Failed to remove wrong question"
	EXAM_CONFIG_GET_SUCCESS    = "Successfully got exam config"
	EXAM_CONFIG_GET_FAILED     = "Failed to get exam config"
	EXAM_CONFIG_UPDATE_SUCCESS = "Successfully updated exam config"
	EXAM_CONFIG_UPDATE_FAILED  = "Failed to update exam config"
	SESSION_START_SUCCESS      = "Successfully started session"
	SESSION_START_FAILED       = "Failed to start session"
	SESSION_RESHUFFLE_DECISION = "Saved random order found, choose whether to reshuffle"
	SESSION_GET_SUCCESS        = "Successfully got session"
	SESSION_GET_FAILED         = "Failed to get session"
	SESSION_NAVIGATE_SUCCESS   = "Successfully moved to question"
	SESSION_NAVIGATE_FAILED    = "Failed to move to question"
	SESSION_ANSWER_SUCCESS     = "Successfully recorded answer"
	SESSION_ANSWER_FAILED      = "Failed to record answer"
	SESSION_REVEAL_SUCCESS     = "Successfully revealed answer"
	SESSION_REVEAL_FAILED      = "Failed to reveal answer"
	SESSION_ADVANCE_SUCCESS    = "Successfully advanced session"
	SESSION_ADVANCE_FAILED     = "Failed to advance session"
	SESSION_UNANSWERED_SUCCESS = "Successfully listed unanswered questions"
	SESSION_UNANSWERED_FAILED  = "Failed to list unanswered questions"
	SESSION_SUBMIT_SUCCESS     = "Successfully submitted exam"
	SESSION_SUBMIT_CONFIRM     = "Exam has unanswered questions, confirm to submit"
	SESSION_SUBMIT_FAILED      = "Failed to submit exam"
	SESSION_MARK_WRONG_SUCCESS = "Successfully marked question as wrong"
	SESSION_MARK_WRONG_FAILED  = "Failed to mark question as wrong"
	SESSION_END_SUCCESS        = "Successfully ended session"
	SESSION_END_FAILED         = "Failed to end session"
)
