package srv

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRBACSrv_CheckPermission(t *testing.T) {
	s := SetupRBACSrv()

	tests := []struct {
		name       string
		role       string
		permission string
		want       bool
	}{
		{
			name:       "管理员拥有管理权限",
			role:       RoleAdmin,
			permission: PermissionAdmin,
			want:       true,
		},
		{
			name:       "管理员继承编辑权限",
			role:       RoleAdmin,
			permission: PermissionEdit,
			want:       true,
		},
		{
			name:       "管理员继承查看权限",
			role:       RoleAdmin,
			permission: PermissionView,
			want:       true,
		},
		{
			name:       "编辑没有管理权限",
			role:       RoleEditor,
			permission: PermissionAdmin,
			want:       false,
		},
		{
			name:       "编辑拥有查看权限",
			role:       RoleEditor,
			permission: PermissionView,
			want:       true,
		},
		{
			name:       "查看者没有编辑权限",
			role:       RoleViewer,
			permission: PermissionEdit,
			want:       false,
		},
		{
			name:       "未知角色没有任何权限",
			role:       "role-unknown",
			permission: PermissionView,
			want:       false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.CheckPermission(tt.role, tt.permission))
		})
	}
}

type staticUser struct {
	role string
	id   string
}

func (u staticUser) GetRole() string { return u.role }
func (u staticUser) GetUser() string { return u.id }

func TestRBACSrv_Check_OwnerFallback(t *testing.T) {
	s := SetupRBACSrv()

	owner := NewRolerWithLazyload(func() (string, error) {
		return "user-1", nil
	})

	// 角色无权限但资源归属于该用户，放行
	err := s.Check(staticUser{role: RoleMember, id: "user-1"}, owner, PermissionEdit)
	assert.Nil(t, err)

	// 角色无权限且资源不属于该用户，拒绝
	err = s.Check(staticUser{role: RoleMember, id: "user-2"}, owner, PermissionEdit)
	assert.NotNil(t, err)

	// 角色本身有权限，无需校验归属
	err = s.Check(staticUser{role: RoleAdmin, id: "user-3"}, owner, PermissionEdit)
	assert.Nil(t, err)
}
