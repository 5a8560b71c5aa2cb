package response

const (
	ServerError = "Server error, try again later"
	//----------------------
	ListNotFound       = "List not found"
	MovieNotFound      = "Movie not found"
	MeetupNotFound     = "Meetup not found"
	CommentNotFound    = "Comment not found"
	CollectionNotFound = "Collection not found"
	//----------------------
	NoOpenMeetup     = "No open meetup to act on"
	VoteLimitReached = "Vote limit for this meetup reached"
	ListLocked       = "List is locked by votes from other members"
	ListLinked       = "List is already linked to a meetup"
	//----------------------
	BadRequestBody = "Incorrect request body"
	//----------------------
	NotListOwner       = "Only the list creator or an admin can do this"
	NotCommentOwner    = "Only the comment author or an admin can do this"
	NotCollectionOwner = "Only the collection creator or an admin can do this"
	AdminOnly          = "Forbidden, Admin users only"
	//----------------------
	CollectionNotSyncable = "Collection has no external list source"
	ExternalSourceFailed  = "External list source failed"
	//----------------------
)
