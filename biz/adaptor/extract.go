package adaptor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"alpstech-server/biz/application/dto/basic"
	"alpstech-server/biz/infrastructure/config"
	"alpstech-server/biz/infrastructure/consts"
	"alpstech-server/biz/infrastructure/util/log"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/golang-jwt/jwt/v4"
)

const hertzContext = "hertz_context"

const bearerPrefix = "Bearer "

func InjectContext(ctx context.Context, c *app.RequestContext) context.Context {
	return context.WithValue(ctx, hertzContext, c)
}

func ExtractContext(ctx context.Context) (*app.RequestContext, error) {
	c, ok := ctx.Value(hertzContext).(*app.RequestContext)
	if !ok {
		return nil, errors.New("hertz context not found")
	}
	return c, nil
}

// ExtractUserMeta 从Authorization头解出用户身份
// 任何失败(无凭证/签名不符/过期)都只返回空身份, 不中断请求
func ExtractUserMeta(ctx context.Context) (user *basic.UserMeta) {
	user = new(basic.UserMeta)
	var err error
	defer func() {
		if err != nil {
			log.CtxInfo(ctx, "extract user meta fail, err=%v", err)
		}
	}()
	c, err := ExtractContext(ctx)
	if err != nil {
		return
	}
	tokenString := strings.TrimPrefix(string(c.GetHeader("Authorization")), bearerPrefix)
	if tokenString == "" {
		return
	}
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(config.GetConfig().Auth.SecretKey), nil
	})
	if err != nil {
		return
	}
	if !token.Valid {
		err = errors.New("token is not valid")
		return
	}
	data, err := json.Marshal(token.Claims)
	if err != nil {
		return
	}
	err = json.Unmarshal(data, user)
	return
}

// RequireIdentity 需要身份的路由显式调用, 匿名请求返回401错误
func RequireIdentity(ctx context.Context) (*basic.UserMeta, error) {
	meta := ExtractUserMeta(ctx)
	if meta.GetEmail() == "" {
		return nil, consts.ErrNotAuthentication
	}
	return meta, nil
}

// GenerateJwtToken 签发HS256 token, 过期时间由配置决定(默认7天)
func GenerateJwtToken(email string) (string, int64, error) {
	iat := time.Now().Unix()
	expire := config.GetConfig().Auth.AccessExpire
	if expire <= 0 {
		expire = consts.DefaultAccessExpire
	}
	exp := iat + expire
	claims := make(jwt.MapClaims)
	claims["exp"] = exp
	claims["iat"] = iat
	claims["email"] = email
	token := jwt.New(jwt.SigningMethodHS256)
	token.Claims = claims
	tokenString, err := token.SignedString([]byte(config.GetConfig().Auth.SecretKey))
	if err != nil {
		return "", 0, err
	}
	return tokenString, exp, nil
}
