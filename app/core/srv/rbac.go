package srv

import (
	"net/http"

	"github.com/mikespook/gorbac/v2"

	"github.com/ck123cabz/template-genius-activation-sub001/pkg/errors"
	"github.com/ck123cabz/template-genius-activation-sub001/pkg/i18n"
)

const (
	// 定义角色ID
	RoleAdmin  = "role-admin"
	RoleEditor = "role-editor"
	RoleViewer = "role-viewer"
	RoleMember = "role-member"

	// 定义权限ID
	PermissionAdmin  = "admin"
	PermissionEdit   = "edit"
	PermissionView   = "view"
	PermissionMember = "member"
)

func SetupRBACSrv() *RBACSrv {
	rbac := gorbac.New()

	pAdmin := gorbac.NewStdPermission(PermissionAdmin)
	pEdit := gorbac.NewStdPermission(PermissionEdit)
	pView := gorbac.NewStdPermission(PermissionView)
	pMember := gorbac.NewStdPermission(PermissionMember)

	roleAdmin := gorbac.NewStdRole(RoleAdmin)
	roleAdmin.Assign(pAdmin)

	roleEditor := gorbac.NewStdRole(RoleEditor)
	roleEditor.Assign(pEdit)

	roleViewer := gorbac.NewStdRole(RoleViewer)
	roleViewer.Assign(pView)

	roleMember := gorbac.NewStdRole(RoleMember)
	roleMember.Assign(pMember)

	rbac.Add(roleAdmin)
	rbac.Add(roleEditor)
	rbac.Add(roleViewer)
	rbac.Add(roleMember)

	// 设置角色继承关系
	rbac.SetParent(RoleViewer, RoleMember)
	rbac.SetParent(RoleEditor, RoleViewer)
	rbac.SetParent(RoleAdmin, RoleEditor)

	return &RBACSrv{
		rbac: rbac,
	}
}

type RBACSrv struct {
	rbac *gorbac.RBAC
}

// CheckPermission 检查角色是否有某权限
func (a *RBACSrv) CheckPermission(roleID, permissionID string) bool {
	return a.rbac.IsGranted(roleID, gorbac.NewStdPermission(permissionID), nil)
}

type RoleObject interface {
	GetUser() (string, error)
}

type LazyRoler struct {
	f      func() (string, error)
	userID string
}

func (s *LazyRoler) GetUser() (string, error) {
	if s.userID == "" {
		var err error
		if s.userID, err = s.f(); err != nil {
			return "", err
		}
	}
	return s.userID, nil
}

func NewRolerWithLazyload(f func() (string, error)) *LazyRoler {
	return &LazyRoler{
		f: f,
	}
}

type RoleUser interface {
	GetRole() string
	GetUser() string
}

// 权限不足时回退校验资源归属，资源属于该用户则放行
func (a *RBACSrv) Check(user RoleUser, obj RoleObject, permissionID string) *errors.CustomizedError {
	if !a.CheckPermission(user.GetRole(), permissionID) {
		resourceUser, err := obj.GetUser()
		if err != nil {
			return errors.Trace("RBACSrv.Check", err)
		}
		if user.GetUser() != resourceUser {
			return errors.New("RBACSrv.Check.Owner", i18n.ERROR_PERMISSION_DENIED, nil).Code(http.StatusForbidden)
		}
	}
	return nil
}
