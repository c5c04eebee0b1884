package riotapi

// summonerResponse is the relevant slice of the summoner-v4 by-name payload
type summonerResponse struct {
	AccountID string `json:"accountId"`
}

// matchListResponse is one page of a member's match history
type matchListResponse struct {
	Matches    []matchReference `json:"matches"`
	StartIndex int              `json:"startIndex"`
	EndIndex   int              `json:"endIndex"`
	TotalGames int              `json:"totalGames"`
}

// matchReference identifies one match in a match list page
type matchReference struct {
	GameID    int64 `json:"gameId"`
	Timestamp int64 `json:"timestamp"` // match start, unix millis
}

// matchResponse is the relevant slice of a match detail payload
type matchResponse struct {
	ParticipantIdentities []participantIdentity `json:"participantIdentities"`
	Participants          []participant         `json:"participants"`
}

type participantIdentity struct {
	ParticipantID int              `json:"participantId"`
	Player        participantOwner `json:"player"`
}

type participantOwner struct {
	AccountID string `json:"accountId"`
}

type participant struct {
	ParticipantID int              `json:"participantId"`
	Stats         participantStats `json:"stats"`
}

type participantStats struct {
	Deaths int `json:"deaths"`
}
