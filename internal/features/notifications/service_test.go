package notifications

import (
	"testing"

	users_testing "taskhub-backend/internal/features/users/testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Notify_CreatesAndLists(t *testing.T) {
	service := GetNotificationService()
	user := users_testing.GetTestUserModel(users_testing.CreateTestUser())

	projectID := uuid.New()
	created := service.Notify(
		user.ID,
		NotificationTypeProjectInvite,
		"You were invited",
		projectID,
	)
	require.NotNil(t, created)

	response, err := service.ListNotifications(user)
	require.NoError(t, err)
	require.Len(t, response.Notifications, 1)

	notification := response.Notifications[0]
	assert.Equal(t, NotificationTypeProjectInvite, notification.Type)
	assert.Equal(t, "You were invited", notification.Message)
	assert.False(t, notification.Read)

	// Invite notifications resolve the related id as a project reference.
	require.NotNil(t, notification.ProjectID)
	assert.Equal(t, projectID, *notification.ProjectID)
	assert.Nil(t, notification.TeamID)
	assert.Nil(t, notification.TaskID)
}

func Test_Notify_TeamInvitation_ResolvesTeamReference(t *testing.T) {
	service := GetNotificationService()
	user := users_testing.GetTestUserModel(users_testing.CreateTestUser())

	teamID := uuid.New()
	service.Notify(user.ID, NotificationTypeTeamInvitation, "Assigned to team", teamID)

	response, err := service.ListNotifications(user)
	require.NoError(t, err)
	require.Len(t, response.Notifications, 1)

	notification := response.Notifications[0]
	require.NotNil(t, notification.TeamID)
	assert.Equal(t, teamID, *notification.TeamID)
	assert.Nil(t, notification.ProjectID)
}

func Test_MarkRead_OwnershipEnforced(t *testing.T) {
	service := GetNotificationService()
	owner := users_testing.GetTestUserModel(users_testing.CreateTestUser())
	other := users_testing.GetTestUserModel(users_testing.CreateTestUser())

	created := service.Notify(
		owner.ID, NotificationTypeRoleChanged, "Role changed", uuid.New(),
	)
	require.NotNil(t, created)

	err := service.MarkRead(created.ID, other)
	assert.ErrorIs(t, err, ErrForbidden)

	require.NoError(t, service.MarkRead(created.ID, owner))

	response, err := service.ListNotifications(owner)
	require.NoError(t, err)
	require.Len(t, response.Notifications, 1)
	assert.True(t, response.Notifications[0].Read)
}

func Test_MarkRead_Unknown_ReturnsNotFound(t *testing.T) {
	service := GetNotificationService()
	user := users_testing.GetTestUserModel(users_testing.CreateTestUser())

	err := service.MarkRead(uuid.New(), user)
	assert.ErrorIs(t, err, ErrNotFound)
}

func Test_MarkAllRead(t *testing.T) {
	service := GetNotificationService()
	user := users_testing.GetTestUserModel(users_testing.CreateTestUser())

	service.Notify(user.ID, NotificationTypeProjectInvite, "first", uuid.New())
	service.Notify(user.ID, NotificationTypeRoleChanged, "second", uuid.New())

	require.NoError(t, service.MarkAllRead(user))

	response, err := service.ListNotifications(user)
	require.NoError(t, err)
	require.Len(t, response.Notifications, 2)
	for _, n := range response.Notifications {
		assert.True(t, n.Read)
	}
}

func Test_ResolveRelated_MarksMatchingTypesRead(t *testing.T) {
	service := GetNotificationService()
	user := users_testing.GetTestUserModel(users_testing.CreateTestUser())

	projectID := uuid.New()
	service.Notify(user.ID, NotificationTypeProjectInvite, "invite", projectID)
	service.Notify(user.ID, NotificationTypeRoleChanged, "unrelated", uuid.New())

	service.ResolveRelated(user.ID, projectID, NotificationTypeProjectInvite)

	response, err := service.ListNotifications(user)
	require.NoError(t, err)
	require.Len(t, response.Notifications, 2)

	for _, n := range response.Notifications {
		if n.Type == NotificationTypeProjectInvite {
			assert.True(t, n.Read)
		} else {
			assert.False(t, n.Read)
		}
	}
}

func Test_Delete_OwnershipEnforced(t *testing.T) {
	service := GetNotificationService()
	owner := users_testing.GetTestUserModel(users_testing.CreateTestUser())
	other := users_testing.GetTestUserModel(users_testing.CreateTestUser())

	created := service.Notify(
		owner.ID, NotificationTypeMemberRemoved, "Removed", uuid.New(),
	)
	require.NotNil(t, created)

	assert.ErrorIs(t, service.Delete(created.ID, other), ErrForbidden)
	require.NoError(t, service.Delete(created.ID, owner))

	response, err := service.ListNotifications(owner)
	require.NoError(t, err)
	assert.Empty(t, response.Notifications)
}

type recordingListener struct {
	received []*Notification
}

func (l *recordingListener) OnNotificationCreated(notification *Notification) {
	l.received = append(l.received, notification)
}

func Test_Notify_PublishesToListeners(t *testing.T) {
	service := GetNotificationService()
	user := users_testing.GetTestUserModel(users_testing.CreateTestUser())

	listener := &recordingListener{}
	service.AddListener(listener)

	created := service.Notify(
		user.ID, NotificationTypeProjectInvite, "listener check", uuid.New(),
	)
	require.NotNil(t, created)

	require.NotEmpty(t, listener.received)
	assert.Equal(t, created.ID, listener.received[len(listener.received)-1].ID)
}
