package domain

// ContentType identifies the channel a content item is produced for.
type ContentType string

const (
	ContentTypeBlog      ContentType = "blog"
	ContentTypeInstagram ContentType = "instagram"
	ContentTypeLinkedIn  ContentType = "linkedin"
	ContentTypeYouTube   ContentType = "youtube"
	ContentTypeFacebook  ContentType = "facebook"
	ContentTypeTwitter   ContentType = "twitter"
	ContentTypeProduct   ContentType = "product"
)

func (t ContentType) String() string { return string(t) }

func (t ContentType) IsValid() bool {
	switch t {
	case ContentTypeBlog, ContentTypeInstagram, ContentTypeLinkedIn, ContentTypeYouTube,
		ContentTypeFacebook, ContentTypeTwitter, ContentTypeProduct:
		return true
	}
	return false
}

// ContentStatus is the editorial state of a content item.
type ContentStatus string

const (
	ContentStatusDraft     ContentStatus = "draft"
	ContentStatusReview    ContentStatus = "review"
	ContentStatusApproved  ContentStatus = "approved"
	ContentStatusScheduled ContentStatus = "scheduled"
	ContentStatusPublished ContentStatus = "published"
)

// ContentStatuses lists every status in editorial order.
var ContentStatuses = []ContentStatus{
	ContentStatusDraft,
	ContentStatusReview,
	ContentStatusApproved,
	ContentStatusScheduled,
	ContentStatusPublished,
}

func (s ContentStatus) String() string { return string(s) }

func (s ContentStatus) IsValid() bool {
	switch s {
	case ContentStatusDraft, ContentStatusReview, ContentStatusApproved,
		ContentStatusScheduled, ContentStatusPublished:
		return true
	}
	return false
}

// ActivityType tags an activity log entry. The set is open: the constants
// below are the ones this service emits.
type ActivityType string

const (
	ActivityContentCreated      ActivityType = "content_created"
	ActivityContentUpdated      ActivityType = "content_updated"
	ActivityContentDeleted      ActivityType = "content_deleted"
	ActivityDocumentCreated     ActivityType = "document_created"
	ActivityAnnouncementCreated ActivityType = "announcement_created"
	ActivityUserJoined          ActivityType = "user_joined"
	ActivityWorkflowCreated     ActivityType = "workflow_created"
)

func (t ActivityType) String() string { return string(t) }

// UserRole is the portal role of a user.
type UserRole string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	return r == UserRoleUser || r == UserRoleAdmin
}

func (r UserRole) IsAdmin() bool {
	return r == UserRoleAdmin
}
